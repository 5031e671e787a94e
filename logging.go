package manifest

import "go.uber.org/zap"

// ZapHook returns a Hook that logs accepted mutations at debug level.
//
// Example:
//
//	c := manifest.Observe(manifest.New(), manifest.ZapHook(log))
func ZapHook(log *zap.Logger) Hook {
	if log == nil {
		log = zap.NewNop()
	}
	return &FuncHook{
		AfterAppendFunc: func(d *Descriptor) {
			log.Debug("descriptor appended", descriptorFields(d)...)
		},
		AfterRemoveFunc: func(d *Descriptor) {
			log.Debug("descriptor removed", descriptorFields(d)...)
		},
	}
}

func descriptorFields(d *Descriptor) []zap.Field {
	fields := []zap.Field{
		zap.Stringer("service", d.Service()),
		zap.Stringer("lifetime", d.Lifetime()),
	}
	if impl := d.Implementation(); impl != nil {
		fields = append(fields, zap.Stringer("implementation", impl))
	} else {
		fields = append(fields, zap.Bool("factory", true))
	}
	return fields
}
