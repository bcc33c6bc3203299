// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package client

import "errors"

// ErrUnknownWindow is returned by RunFrame for a *Window whose canvas was
// already deleted out from under it.
var ErrUnknownWindow = errors.New("client: window's canvas no longer exists")
