package config

import "errors"

// ErrConfigMissing is returned when the .qs file does not exist
var ErrConfigMissing = errors.New("config file not found")

// ErrConfigParse is returned when the .qs file is not a valid JSON document
var ErrConfigParse = errors.New("failed to parse config")

// ErrNameResolution is returned when no application name can be derived
var ErrNameResolution = errors.New("unable to resolve application name")

// ErrMissingCloudConfig is returned when cloudpush is used without a cloudpush section
var ErrMissingCloudConfig = errors.New("missing cloudpush configuration")
