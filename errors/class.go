package errors

import (
	"errors"
	"strings"
	"sync"
)

const (
	majorBitSize = 8
	minorBitSize = 12
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (1 << indexBitSize) - 1
	maxMinorValue = (1 << minorBitSize) - 1
	maxMajorValue = (1 << majorBitSize) - 1
)

var registry = newClassRegistry()

// Class is the error classification model.
// It is composed of the major, minor and index subclassifications:
//	major - 8 bit  - global scope division i.e. 'Factory', 'Config'
//	minor - 12 bit - subdivision of the major i.e. Factory - 'Service'
//	index - 12 bit - the most precise classification i.e. Factory - Service - 'Not Registered'
type Class uint32

// Major gets the major part of the classification.
func (c Class) Major() Major {
	return Major(c >> (minorBitSize + indexBitSize))
}

// Minor gets the minor part of the classification.
func (c Class) Minor() Minor {
	return Minor{major: c.Major(), value: uint16(uint32(c)>>indexBitSize) & maxMinorValue}
}

// Index gets the index value of the classification.
func (c Class) Index() uint16 {
	return uint16(c & maxIndexValue)
}

// IsMajor checks if the given class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	names := []string{c.Major().Name()}
	minor := c.Minor()
	if minor.value != 0 {
		names = append(names, minor.Name())
		if idx := c.Index(); idx != 0 {
			names = append(names, registry.indexName(c))
		}
	}
	return strings.Replace(strings.Join(names, ""), " ", "", -1)
}

// Major is the top level error classification.
type Major uint8

// Name returns the major registered name.
func (m Major) Name() string {
	registry.RLock()
	defer registry.RUnlock()
	return registry.majors[m]
}

// RegisterMinor registers the minor classification with the 'name' unique for given major.
func (m Major) RegisterMinor(name string) (Minor, error) {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.majors[m]; !ok || m == 0 {
		return Minor{}, errors.New("major not registered")
	}
	key := minorKey(m, name)
	if _, exists := registry.uniqueNames[key]; exists {
		return Minor{}, errors.New("minor name already registered")
	}
	next := registry.minorIDs[m] + 1
	if next > maxMinorValue {
		return Minor{}, errors.New("too many minors registered")
	}
	registry.minorIDs[m] = next
	registry.uniqueNames[key] = struct{}{}

	minor := Minor{major: m, value: next}
	registry.minors[minor] = name
	return minor, nil
}

// MustRegisterMinor registers the minor classification. Panics on error.
func (m Major) MustRegisterMinor(name string) Minor {
	minor, err := m.RegisterMinor(name)
	if err != nil {
		panic(err)
	}
	return minor
}

// Minor is the mid level error classification unique within its major.
type Minor struct {
	major Major
	value uint16
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// Name gets the minor's registered name.
func (m Minor) Name() string {
	registry.RLock()
	defer registry.RUnlock()
	return registry.minors[m]
}

// Class gets the major/minor class with no index.
func (m Minor) Class() Class {
	return Class(uint32(m.major)<<(minorBitSize+indexBitSize) | uint32(m.value)<<indexBitSize)
}

// RegisterIndex registers the index classification for given minor and returns its Class.
func (m Minor) RegisterIndex(name string) (Class, error) {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.minors[m]; !ok {
		return Class(0), errors.New("minor not registered")
	}
	key := minorKey(m.major, registry.minors[m]) + "/" + name
	if _, exists := registry.uniqueNames[key]; exists {
		return Class(0), errors.New("index name already registered")
	}
	next := registry.indexIDs[m] + 1
	if next > maxIndexValue {
		return Class(0), errors.New("too many indexes registered")
	}
	registry.indexIDs[m] = next
	registry.uniqueNames[key] = struct{}{}

	c := m.Class() | Class(next)
	registry.indexes[c] = name
	return c, nil
}

// MustRegisterIndex registers the index classification. Panics on error.
func (m Minor) MustRegisterIndex(name string) Class {
	c, err := m.RegisterIndex(name)
	if err != nil {
		panic(err)
	}
	return c
}

// RegisterMajor registers new major error classification with provided 'name'.
func RegisterMajor(name string) (Major, error) {
	registry.Lock()
	defer registry.Unlock()

	if _, exists := registry.uniqueNames[name]; exists {
		return Major(0), errors.New("major name already registered")
	}
	if registry.nextMajor > maxMajorValue {
		return Major(0), errors.New("too many majors registered")
	}
	m := Major(registry.nextMajor)
	registry.nextMajor++
	registry.majors[m] = name
	registry.uniqueNames[name] = struct{}{}
	return m, nil
}

// MustRegisterMajor registers new major error classification. Panics on error.
func MustRegisterMajor(name string) Major {
	m, err := RegisterMajor(name)
	if err != nil {
		panic(err)
	}
	return m
}

type classRegistry struct {
	sync.RWMutex

	uniqueNames map[string]struct{}
	majors      map[Major]string
	minors      map[Minor]string
	indexes     map[Class]string
	minorIDs    map[Major]uint16
	indexIDs    map[Minor]uint16
	nextMajor   int
}

func (r *classRegistry) indexName(c Class) string {
	r.RLock()
	defer r.RUnlock()
	return r.indexes[c]
}

func newClassRegistry() *classRegistry {
	return &classRegistry{
		uniqueNames: map[string]struct{}{},
		majors:      map[Major]string{},
		minors:      map[Minor]string{},
		indexes:     map[Class]string{},
		minorIDs:    map[Major]uint16{},
		indexIDs:    map[Minor]uint16{},
		nextMajor:   1,
	}
}

func minorKey(m Major, name string) string {
	return registry.majors[m] + "/" + name
}
