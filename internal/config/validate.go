package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

func validateKind(v string) error {
	if v != KindInt && v != KindString {
		return fmt.Errorf("invalid kind %s, want %s or %s", v, KindInt, KindString)
	}
	return nil
}

func validateLogLevel(v string) error {
	_, err := zerolog.ParseLevel(v)
	if err != nil {
		return fmt.Errorf("invalid level string %s", v)
	}

	return nil
}
