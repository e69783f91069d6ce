package adapter

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/juju/errors"
)

// Adapter is a USB debug probe model that can reach AT32 parts over SWD.
type Adapter struct {
	Name    string
	Vendor  gousb.ID
	Product gousb.ID
}

var adapters = []Adapter{
	{Name: "Artery AT-Link", Vendor: 0x2e3c, Product: 0xf000},
	{Name: "ST-Link V2", Vendor: 0x0483, Product: 0x3748},
	{Name: "ST-Link V2-1", Vendor: 0x0483, Product: 0x374b},
	{Name: "ST-Link V3", Vendor: 0x0483, Product: 0x374f},
	{Name: "ST-Link V3E", Vendor: 0x0483, Product: 0x374e},
	{Name: "DAPLink CMSIS-DAP", Vendor: 0x0d28, Product: 0x0204},
	{Name: "Raspberry Pi Debug Probe", Vendor: 0x2e8a, Product: 0x000c},
	{Name: "SEGGER J-Link", Vendor: 0x1366, Product: 0x0101},
	{Name: "SEGGER J-Link", Vendor: 0x1366, Product: 0x0105},
}

func Identify(vendor, product gousb.ID) (Adapter, bool) {
	for _, m := range adapters {
		if m.Vendor == vendor && m.Product == product {
			return m, true
		}
	}
	return Adapter{}, false
}

// Found is an attached adapter.
type Found struct {
	Adapter
	Bus     int
	Address int
	Serial  string
}

func (f Found) Path() string {
	return fmt.Sprintf("%d.%d", f.Bus, f.Address)
}

func (f Found) String() string {
	s := fmt.Sprintf("[%s] %s (%s:%s)", f.Path(), f.Name, f.Vendor, f.Product)
	if f.Serial != "" {
		s += " serial " + f.Serial
	}
	return s
}

// List opens every known adapter on the bus long enough to read its serial
// number. Devices that cannot be opened are still listed, without serial.
func List(ctx *gousb.Context) ([]Found, error) {
	var result []Found

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		m, ok := Identify(desc.Vendor, desc.Product)
		if ok {
			result = append(result, Found{
				Adapter: m,
				Bus:     desc.Bus,
				Address: desc.Address,
			})
		}
		return ok
	})
	defer func() {
		for _, d := range devs {
			d.Close()
		}
	}()

	for _, d := range devs {
		serial, err := d.SerialNumber()
		if err != nil {
			continue
		}
		for i := range result {
			if result[i].Bus == d.Desc.Bus && result[i].Address == d.Desc.Address {
				result[i].Serial = serial
			}
		}
	}

	if err != nil && len(devs) == 0 && len(result) == 0 {
		return nil, errors.Annotate(err, "cannot enumerate USB devices")
	}

	return result, nil
}
