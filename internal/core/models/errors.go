package models

import "errors"

var (
	ErrNoData           = errors.New("no data in window")
	ErrInvalidValue     = errors.New("invalid metric value")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrProbeUnavailable = errors.New("system probe unavailable")
	ErrScrapeDisabled   = errors.New("scrape format export disabled")
)
