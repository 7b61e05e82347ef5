package metrics

import "errors"

var (
	ErrNilStatsProvider = errors.New("metrics: nil stats provider")
	ErrEmptyNamespace   = errors.New("metrics: empty namespace")
)
