package alert

import "errors"

var ErrRegistryClosed = errors.New("alert: registry closed")
