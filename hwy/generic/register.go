package generic

import (
	"errors"

	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/registry"
)

// Name identifies the generic kernels in a registry.
const Name = "generic"

// Register adds every generic kernel to r under the catch-all target at
// registry.PriorityGeneric. Float kernels are registered for float32 and
// float64; Clip, the FMA family and NextAfter also for every integer type.
//
// Registering into a registry that already holds the generic kernels
// returns an error wrapping registry.ErrDuplicate.
func Register(r *registry.Registry) error {
	var errs []error
	errs = append(errs, registerFloat[float32](r)...)
	errs = append(errs, registerFloat[float64](r)...)
	errs = append(errs, registerInt[int8](r)...)
	errs = append(errs, registerInt[int16](r)...)
	errs = append(errs, registerInt[int32](r)...)
	errs = append(errs, registerInt[int64](r)...)
	errs = append(errs, registerInt[uint8](r)...)
	errs = append(errs, registerInt[uint16](r)...)
	errs = append(errs, registerInt[uint32](r)...)
	errs = append(errs, registerInt[uint64](r)...)
	return errors.Join(errs...)
}

func entry[T hwy.Lanes](op registry.Op, kernel any) registry.Entry {
	return registry.Entry{
		Op:       op,
		Elem:     registry.ElemTypeOf[T](),
		Target:   hwy.DispatchScalar,
		Priority: registry.PriorityGeneric,
		Name:     Name,
		Kernel:   kernel,
	}
}

func registerAll(r *registry.Registry, entries []registry.Entry) []error {
	var errs []error
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func registerFloat[T hwy.Floats](r *registry.Registry) []error {
	return registerAll(r, []registry.Entry{
		entry[T](registry.OpBitOfSign, registry.Unary[T](BitOfSign[T])),
		entry[T](registry.OpIsInf, registry.Predicate[T](IsInf[T])),
		entry[T](registry.OpIsFinite, registry.Predicate[T](IsFinite[T])),
		entry[T](registry.OpIsNaN, registry.Predicate[T](IsNaN[T])),
		entry[T](registry.OpClip, registry.Ternary[T](Clip[T])),
		entry[T](registry.OpFdim, registry.Binary[T](Fdim[T])),
		entry[T](registry.OpFMA, registry.Ternary[T](FMA[T])),
		entry[T](registry.OpFMS, registry.Ternary[T](FMS[T])),
		entry[T](registry.OpFNMA, registry.Ternary[T](FNMA[T])),
		entry[T](registry.OpFNMS, registry.Ternary[T](FNMS[T])),
		entry[T](registry.OpNearbyInt, registry.Unary[T](NearbyInt[T])),
		entry[T](registry.OpTrunc, registry.Unary[T](Trunc[T])),
		entry[T](registry.OpRemainder, registry.Binary[T](Remainder[T])),
		entry[T](registry.OpFmod, registry.Binary[T](Fmod[T])),
		entry[T](registry.OpNextAfter, registry.Binary[T](NextAfter[T])),
	})
}

func registerInt[T hwy.Integers](r *registry.Registry) []error {
	return registerAll(r, []registry.Entry{
		entry[T](registry.OpClip, registry.Ternary[T](Clip[T])),
		entry[T](registry.OpFMA, registry.Ternary[T](FMA[T])),
		entry[T](registry.OpFMS, registry.Ternary[T](FMS[T])),
		entry[T](registry.OpFNMA, registry.Ternary[T](FNMA[T])),
		entry[T](registry.OpFNMS, registry.Ternary[T](FNMS[T])),
		entry[T](registry.OpNextAfter, registry.Binary[T](NextAfterInt[T])),
	})
}
