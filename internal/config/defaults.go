package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultYAML []byte
