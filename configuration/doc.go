// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the daemon configuration
//
// the configuration file is a Lua program whose final expression is a
// table; executing it lets a deployment compute values, include other
// files and read the environment instead of duplicating settings
package configuration
