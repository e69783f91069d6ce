package flash

import (
	"io"
	"sort"
	"strings"

	"github.com/juju/errors"
)

// Driver is the minimum a flash driver implements: identifying the part
// and filling in the bank geometry. Everything else is an optional
// capability, checked with the helpers below.
type Driver interface {
	Name() string
	Probe(b *Bank) error
	AutoProbe(b *Bank) error
}

type Informer interface {
	Info(b *Bank, w io.Writer) error
}

type Eraser interface {
	Erase(b *Bank, first, last int) error
}

type Protector interface {
	Protect(b *Bank, set bool, first, last int) error
}

type Programmer interface {
	Write(b *Bank, buf []byte, offset uint32) error
}

type BankReader interface {
	Read(b *Bank, buf []byte, offset uint32) error
}

type EraseChecker interface {
	EraseCheck(b *Bank) error
}

func notSupported(d Driver, op string) error {
	return errors.NotSupportedf("%s on %s flash", op, d.Name())
}

func Info(d Driver, b *Bank, w io.Writer) error {
	if i, ok := d.(Informer); ok {
		return i.Info(b, w)
	}
	return notSupported(d, "info")
}

func Erase(d Driver, b *Bank, first, last int) error {
	if e, ok := d.(Eraser); ok {
		return e.Erase(b, first, last)
	}
	return notSupported(d, "erase")
}

func Protect(d Driver, b *Bank, set bool, first, last int) error {
	if p, ok := d.(Protector); ok {
		return p.Protect(b, set, first, last)
	}
	return notSupported(d, "protect")
}

func Write(d Driver, b *Bank, buf []byte, offset uint32) error {
	if p, ok := d.(Programmer); ok {
		return p.Write(b, buf, offset)
	}
	return notSupported(d, "write")
}

// Read uses the driver's own read routine if it has one, otherwise
// DefaultRead.
func Read(d Driver, b *Bank, buf []byte, offset uint32) error {
	if r, ok := d.(BankReader); ok {
		return r.Read(b, buf, offset)
	}
	return DefaultRead(b, buf, offset)
}

// EraseCheck uses the driver's own blank check if it has one, otherwise
// DefaultBlankCheck.
func EraseCheck(d Driver, b *Bank) error {
	if c, ok := d.(EraseChecker); ok {
		return c.EraseCheck(b)
	}
	return DefaultBlankCheck(b)
}

var drivers = map[string]Driver{}

// Register makes a driver available by name. It is meant to be called
// from init functions.
func Register(d Driver) {
	name := strings.ToLower(d.Name())
	if _, ok := drivers[name]; ok {
		panic("Flash driver already registered with name " + name)
	}
	drivers[name] = d
}

func DriverByName(name string) (Driver, error) {
	d, ok := drivers[strings.ToLower(name)]
	if !ok {
		return nil, errors.NotFoundf("flash driver %q", name)
	}
	return d, nil
}

// Drivers lists the registered driver names in order.
func Drivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
