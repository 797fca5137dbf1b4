// SPDX-License-Identifier: MPL-2.0

// Package runtime dispatches rendered command lines to a shell.
//
// Two runtime implementations are available:
//   - native: runs each line through the host shell (SHELL/bash/sh on
//     POSIX, PowerShell or cmd on Windows)
//   - virtual: runs each line through the embedded mvdan/sh interpreter,
//     available even on hosts with no usable shell
//
// Both implement the Runtime interface. A dispatched line blocks the
// invocation until the child exits; the package imposes no timeout.
package runtime
