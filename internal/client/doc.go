// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the preview client runtime.
//
// It owns the asynchronous tenant configuration load through
// [ConfigProvider] and wires it to the terminal UI so that views never call
// the loader directly.
package client
