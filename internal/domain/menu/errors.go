package menu

import "errors"

var ErrMenuNotFound = errors.New("food menu not found")
