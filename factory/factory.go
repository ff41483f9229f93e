package factory

import (
	"sort"

	"github.com/neuronlabs/helpers/errors"
	"github.com/neuronlabs/helpers/log"
)

var logger = log.NewModuleLogger("factory")

// Constructor is the function that creates new service instance for provided arguments.
type Constructor func(args ...interface{}) (interface{}, error)

// Service is the factory registry entry.
type Service struct {
	// Key is the unique, case sensitive service name.
	Key string
	// New is the service constructor.
	New Constructor
}

// Factory creates the service instances by their registered keys.
type Factory struct {
	name     string
	keys     []string
	services map[string]Constructor
}

// New creates the factory with given 'name' and the 'builtin' services.
// The 'overrides' are merged after the built-in services. An override with an
// already registered key replaces its constructor in place, a new key is appended.
// Services with a nil constructor are skipped, so a nil override never replaces
// nor removes an already registered service.
func New(name string, builtin []Service, overrides ...Service) *Factory {
	f := &Factory{
		name:     name,
		services: make(map[string]Constructor, len(builtin)+len(overrides)),
	}
	for _, s := range builtin {
		f.register(s)
	}
	for _, s := range overrides {
		f.register(s)
	}
	logger.Debugf("Factory: '%s' created with %d services", name, len(f.keys))
	return f
}

// NewWithMap creates the factory with given 'name' and 'builtin' services.
// The 'overrides' mapping is merged in the sorted key order.
// Nil constructors are skipped the same way as in New.
func NewWithMap(name string, builtin []Service, overrides map[string]Constructor) *Factory {
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	services := make([]Service, len(keys))
	for i, key := range keys {
		services[i] = Service{Key: key, New: overrides[key]}
	}
	return New(name, builtin, services...)
}

// Name gets the factory name.
func (f *Factory) Name() string {
	return f.name
}

// NewInstance creates new instance of the service registered with the 'key'.
// The 'args' are forwarded to the service constructor.
// If the key is not registered the function returns an error of the
// 'errors.ClassFactoryNotRegistered' class.
func (f *Factory) NewInstance(key string, args ...interface{}) (interface{}, error) {
	constructor, ok := f.services[key]
	if !ok {
		logger.Debug2f("Factory: '%s' has no service: '%s'", f.name, key)
		return nil, errors.NewDetf(errors.ClassFactoryNotRegistered, "Service %s is not registered", key)
	}

	instance, err := constructor(args...)
	if err != nil {
		logger.Debugf("Factory: '%s' creating service: '%s' failed: %v", f.name, key, err)
		return nil, errors.NewDetf(errors.ClassFactoryConstructor, "Service %s constructor failed: %v", key, err).WithCause(err)
	}
	return instance, nil
}

// Has checks if the service with given 'key' is registered.
func (f *Factory) Has(key string) bool {
	_, ok := f.services[key]
	return ok
}

// Keys gets the registered service keys in the registration order.
func (f *Factory) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

// Len gets the number of the registered services.
func (f *Factory) Len() int {
	return len(f.keys)
}

func (f *Factory) register(s Service) {
	if s.New == nil {
		logger.Warningf("Factory: '%s' service: '%s' has no constructor. Skipping", f.name, s.Key)
		return
	}
	if _, ok := f.services[s.Key]; !ok {
		f.keys = append(f.keys, s.Key)
	} else {
		logger.Debug3f("Factory: '%s' service: '%s' overwritten", f.name, s.Key)
	}
	f.services[s.Key] = s.New
}

// IsNotRegistered checks if the 'err' is the service not registered error.
func IsNotRegistered(err error) bool {
	return errors.IsClass(err, errors.ClassFactoryNotRegistered)
}
