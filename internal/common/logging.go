/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common holds shared infrastructure such as the package logger.
package common

import "go.uber.org/zap"

// Log is the logger used throughout the module. Logging is disabled by
// default; use SetLogger to enable it.
var Log = zap.NewNop().Sugar()

// SetLogger replaces the module logger.
func SetLogger(logger *zap.SugaredLogger) {
	Log = logger
}
