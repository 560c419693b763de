package cartridge

import "github.com/pkg/errors"

var errShortMapperState = errors.New("save state: truncated mapper state")
