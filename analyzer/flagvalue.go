// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"strconv"

	"fillmore-labs.com/loopchain/internal/config"
)

// behaviorFlag is a boolean [flag.Getter] switching one [config.Config] flag of a behavior.
type behaviorFlag struct {
	behavior *config.Behavior
	flag     config.Config
}

// Set implements [flag.Value].
func (f behaviorFlag) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.behavior.Set(f.flag, b)

	return nil
}

// String implements [flag.Value]. The zero value is used by the flag package
// to detect defaults and has no behavior.
func (f behaviorFlag) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f behaviorFlag) Get() any { return f.enabled() }

// IsBoolFlag allows -generated without a value.
func (f behaviorFlag) IsBoolFlag() bool { return true }

func (f behaviorFlag) enabled() bool {
	return f.behavior != nil && f.behavior.Enabled(f.flag)
}

// parseBool accepts on and off in addition to [strconv.ParseBool] values.
func parseBool(s string) (bool, error) {
	switch s {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil

	default:
		return strconv.ParseBool(s)
	}
}
