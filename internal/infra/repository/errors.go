package repository

import "errors"

var ErrInvalidCacheRecord = errors.New("invalid busy cache record")
