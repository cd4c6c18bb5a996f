// SPDX-License-Identifier: MIT

package phrase

import "errors"

var (
	// ErrNoLetters indicates a phrase without any A–Z letter to encode.
	ErrNoLetters = errors.New("phrase: input contains no letters")

	// ErrInvalidBase indicates an unknown letter base.
	ErrInvalidBase = errors.New("phrase: invalid letter base")

	// ErrEmptyInput indicates nothing was left after sanitising in Digits mode.
	ErrEmptyInput = errors.New("phrase: input contains no digits")

	// ErrInvalidMode indicates an unknown input mode.
	ErrInvalidMode = errors.New("phrase: invalid input mode")
)
