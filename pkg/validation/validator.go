// Vidcue Core
// Copyright (c) 2026 The Vidcue Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Vidcue Core.
//
// Vidcue Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vidcue Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vidcue Core.  If not, see <http://www.gnu.org/licenses/>.

// Package validation validates engine options and config values using
// go-playground/validator with custom rules for Vidcue-specific types.
package validation

import (
	"errors"
	"fmt"

	"github.com/VidcueProject/vidcue-core/pkg/resolver/similarity"
	"github.com/go-playground/validator/v10"
)

// Validator handles validation of options and config structs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator with registered custom rules.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Register custom rules for types that can't use built-ins
	_ = v.RegisterValidation("similarity_backend", validateSimilarityBackend)

	return &Validator{validate: v}
}

// DefaultValidator is a shared validator instance.
var DefaultValidator = NewValidator()

// Validate validates a struct and returns a formatted error if validation
// fails.
func (v *Validator) Validate(params any) error {
	if err := v.validate.Struct(params); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewError(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateSimilarityBackend checks the value names a known similarity
// backend. Empty is allowed so optional fields can fall back to the
// default backend.
func validateSimilarityBackend(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return similarity.KnownBackend(val)
}
