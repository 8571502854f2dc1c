// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package trust classifies resource fields as trusted.
//
// Only ClowdApp, ClowdJob and ClowdJobInvocation resources are eligible.
// Within those, a field is trusted when its owning app or component is listed
// in BONFIRE_TRUSTED_APPS / BONFIRE_TRUSTED_COMPONENTS, or when its value is a
// template placeholder for the matching resource parameter:
//
//	resources.requests.cpu     ${CPU_REQUEST...}
//	resources.limits.cpu       ${CPU_LIMIT...}
//	resources.requests.memory  ${MEM_REQUEST...}
//	resources.limits.memory    ${MEM_LIMIT...}
package trust
