// This file is part of Govectrex.
//
// Govectrex is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Govectrex is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Govectrex.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// the delimiters of a command line preferences string. for example:
//
//	"integrator.merge::false; vectrex.framecycles::25000"
const (
	commandLineEntry    = ";"
	commandLineKeyValue = "::"
)

// each group on the stack is the set of values not yet claimed by a call to
// Disk.Add()
var commandLineStack []map[string]Value

// PushCommandLineStack parses a preferences string and adds it as a new group.
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, entry := range strings.Split(prefs, commandLineEntry) {
		k, v, ok := strings.Cut(entry, commandLineKeyValue)
		if !ok || strings.Contains(v, commandLineKeyValue) {
			continue
		}
		group[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack removes the most recent group and returns the entries in
// that group that were never claimed, as a preferences string sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := len(commandLineStack) - 1
	group := commandLineStack[top]
	commandLineStack = commandLineStack[:top]

	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s%s%v", k, commandLineKeyValue, group[k]))
	}

	return strings.Join(unused, commandLineEntry+" ")
}

// GetCommandLinePref claims the value for the key from the most recent group.
// A claimed value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	group := commandLineStack[len(commandLineStack)-1]
	v, ok := group[key]
	if ok {
		delete(group, key)
	}
	return ok, v
}
