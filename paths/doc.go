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

// Package paths contains functions to prepare paths for govectrex resources,
// such as the preferences file.
//
// The ResourcePath() function returns the path to the resource file specified
// in the arguments. It creates the directories as required but does not
// otherwise touch or create files.
//
// For builds with the "release" build tag the path is rooted in the user's
// configuration directory. On modern Linux systems that would be:
//
//	/home/user/.config/govectrex/
//
// For non-release builds the path is rooted in the current working directory:
//
//	.govectrex
package paths
