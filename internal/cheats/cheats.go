// Package cheats implements GameShark and Game Genie code parsing and
// the read-intercept table the address bus consults after every read.
package cheats

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Limit is the maximum number of simultaneously registered cheats.
const Limit = 10

// Cheat is one registered code. A GameShark cheat carries a bank to
// match against the current WRAM/ERAM bank; a Game Genie cheat may
// carry an old-data byte the pre-read value must equal.
type Cheat struct {
	Address uint16
	NewData uint8

	OldData    uint8
	HasOldData bool
	Bank       uint8
	HasBank    bool
}

// Registry holds registered cheats keyed by an opaque id supplied by
// the host.
type Registry struct {
	registered map[string]Cheat
}

func NewRegistry() *Registry {
	return &Registry{registered: make(map[string]Cheat)}
}

func parseHexByte(s, field string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, errors.Errorf("invalid %s byte: %s", field, s)
	}
	return uint8(v), nil
}

func parseHexBits(s, field string, bits int) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, bits)
	if err != nil {
		return 0, errors.Errorf("invalid %s: %s", field, s)
	}
	return uint16(v), nil
}

// ParseGameShark parses an 8-hex-digit GameShark code of the form
// BBNNAALL: bank, new data, then the target address little-endian.
// Only addresses in 0xA000-0xDFFF (external/work RAM) are valid.
func ParseGameShark(code string) (Cheat, error) {
	if len(code) != 8 {
		return Cheat{}, errors.New("gameshark codes must be eight digits long")
	}
	bank, err := parseHexByte(code[:2], "bank")
	if err != nil {
		return Cheat{}, err
	}
	newData, err := parseHexByte(code[2:4], "new data")
	if err != nil {
		return Cheat{}, err
	}
	addrLS, err := parseHexByte(code[4:6], "address")
	if err != nil {
		return Cheat{}, err
	}
	addrMS, err := parseHexByte(code[6:8], "address")
	if err != nil {
		return Cheat{}, err
	}

	address := uint16(addrMS)<<8 | uint16(addrLS)
	if address < 0xA000 || address > 0xDFFF {
		return Cheat{}, errors.Errorf("invalid address: %#04x", address)
	}

	return Cheat{
		Address: address,
		NewData: newData,
		Bank:    bank,
		HasBank: true,
	}, nil
}

// ParseGameGenie parses a Game Genie code written with dashes as 7 or 11
// characters (ABC-DEF or ABC-DEF-GHI, 6 or 9 hex digits); the dashes are
// stripped before parsing. The long form carries an old-data compare byte stored
// rotated right by 2 and XORed with 0xBA; addresses are unscrambled via
// XOR 0xF000 and must land in ROM (0x0000-0x7FFF).
func ParseGameGenie(code string) (Cheat, error) {
	if len(code) != 11 && len(code) != 7 {
		return Cheat{}, errors.New("game genie codes must be either eleven or seven digits long")
	}

	stripped := strings.ReplaceAll(code, "-", "")
	if len(stripped) != 6 && len(stripped) != 9 {
		return Cheat{}, errors.New("game genie codes must hold six or nine hex digits")
	}
	if len(stripped) > 6+1 {
		// drop the unused 8th digit of the long form
		stripped = stripped[:7] + stripped[8:]
	}

	newData, err := parseHexByte(stripped[:2], "new data")
	if err != nil {
		return Cheat{}, err
	}
	addrLS, err := parseHexBits(stripped[2:5], "address", 12)
	if err != nil {
		return Cheat{}, err
	}
	addrMS, err := parseHexByte(stripped[5:6], "address")
	if err != nil {
		return Cheat{}, err
	}

	address := (uint16(addrMS)<<12 | addrLS) ^ 0xF000
	if address > 0x7FFF {
		return Cheat{}, errors.Errorf("invalid address: %#04x", address)
	}

	c := Cheat{Address: address, NewData: newData}
	if len(stripped) > 6 {
		oldData, err := parseHexByte(stripped[6:8], "old data")
		if err != nil {
			return Cheat{}, err
		}
		c.OldData = (oldData>>2 | oldData<<6) ^ 0xBA
		c.HasOldData = true
	}
	return c, nil
}

func (r *Registry) register(id string, c Cheat) error {
	if len(r.registered) >= Limit {
		return errors.Errorf("cannot register more than %d cheats at a time", Limit)
	}
	r.registered[id] = c
	return nil
}

// RegisterGameShark parses and registers a GameShark code under id.
// Malformed codes are rejected without touching the registry.
func (r *Registry) RegisterGameShark(id, code string) error {
	c, err := ParseGameShark(code)
	if err != nil {
		return err
	}
	return r.register(id, c)
}

// RegisterGameGenie parses and registers a Game Genie code under id.
func (r *Registry) RegisterGameGenie(id, code string) error {
	c, err := ParseGameGenie(code)
	if err != nil {
		return err
	}
	return r.register(id, c)
}

// Unregister removes the cheat registered under id, if any.
func (r *Registry) Unregister(id string) {
	delete(r.registered, id)
}

// Len returns the number of registered cheats.
func (r *Registry) Len() int { return len(r.registered) }

// Apply returns the substituted byte for a read of address that
// returned oldData, consulting bankOf for bank-gated (GameShark)
// cheats. If no cheat matches, oldData is returned unchanged.
func (r *Registry) Apply(address uint16, oldData uint8, bankOf func(uint16) uint8) uint8 {
	for _, c := range r.registered {
		if c.Address != address {
			continue
		}
		switch {
		case c.HasBank:
			if bankOf(address) != c.Bank {
				continue
			}
		case c.HasOldData:
			if oldData != c.OldData {
				continue
			}
		}
		return c.NewData
	}
	return oldData
}
