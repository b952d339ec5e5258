// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when neither a listen address nor a
// router is available.
var errNoServersAreCreated = errors.New("no servers are created: HTTP address and router are required")
