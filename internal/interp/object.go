package interp

// ObjectInstance is a runtime instance of a class: its field values plus a
// back-reference to the registry it was built from. `new` expressions look
// classes up through the Interpreter's registry, not through this field.
type ObjectInstance struct {
	Class    *ClassDescriptor
	Registry *ClassRegistry
	Fields   map[string]Value
}

// NewObjectInstance allocates a fresh instance of class, converting every
// field initializer to a Value via convertAtom.
func NewObjectInstance(class *ClassDescriptor, registry *ClassRegistry, ctx *errorContext) (*ObjectInstance, error) {
	fields := make(map[string]Value, len(class.Fields))
	for _, f := range class.Fields {
		val, err := convertAtom(f.Init, registry, ctx)
		if err != nil {
			return nil, err
		}
		fields[f.Name] = val
	}

	return &ObjectInstance{
		Class:    class,
		Registry: registry,
		Fields:   fields,
	}, nil
}
