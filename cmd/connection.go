package cmd

import (
	"strconv"
	"strings"

	"github.com/juju/errors"

	"github.com/BertoldVdb/atflash/flash"
	"github.com/BertoldVdb/atflash/target"

	_ "github.com/BertoldVdb/atflash/artery"
)

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, errors.Annotatef(err, "invalid address %q", s)
	}
	return uint32(v), nil
}

func splitAssignment(s string) (uint32, string, error) {
	index := strings.Index(s, "=")
	if index < 0 {
		return 0, "", errors.Errorf("expected address=value, got %q", s)
	}

	addr, err := parseAddress(s[:index])
	if err != nil {
		return 0, "", err
	}
	return addr, s[index+1:], nil
}

func openTarget() (target.Target, func(), error) {
	if len(mappings) == 0 && len(pokes) == 0 {
		return nil, nil, errors.New("no target: describe it with --map and --poke")
	}

	snapshot := target.NewSnapshot()
	mem := target.NewMemory()

	for _, m := range mappings {
		base, path, err := splitAssignment(m)
		if err == nil {
			err = snapshot.Map(base, path)
		}
		if err != nil {
			snapshot.Close()
			return nil, nil, err
		}
	}
	if snapshot.Examined() {
		mem.Fallback = snapshot
	}

	for _, m := range pokes {
		addr, value, err := splitAssignment(m)
		if err != nil {
			snapshot.Close()
			return nil, nil, err
		}
		v, err := parseAddress(value)
		if err != nil {
			snapshot.Close()
			return nil, nil, err
		}
		mem.PokeU32(addr, v)
	}

	return mem, func() { snapshot.Close() }, nil
}

func openBank() (flash.Driver, *flash.Bank, func(), error) {
	d, err := flash.DriverByName(driverName)
	if err != nil {
		return nil, nil, nil, err
	}

	t, closer, err := openTarget()
	if err != nil {
		return nil, nil, nil, err
	}

	return d, flash.NewBank(d.Name()+".flash", t), closer, nil
}
