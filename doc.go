/*
 * doc.go, part of govrc.
 *
 * Copyright 2026 The govrc Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package vrc is the main package of the govrc library. It provides a small molecular
geometry type and the geometric routines needed to set up variable-reaction-coordinate
transition state theory (VRC-TST) calculations.

	**govrc Capabilities**

    Translates and rotates geometries, either in place or on a copy.

    Concatenates geometries, e.g. two reacting fragments into one system.

    Obtains the closest unit perpendicular to a set of points (the normal
	of the plane that best fits them) from its singular value decomposition.
	Useful for dividing-surface pivot points and their orientation.

    Reads and writes XYZ files and produces the XYZ text used by 3D viewers.

Subpackages:

    v3: the Matrix type used for coordinates, vectors and rotation matrices.

    rot: uniformly distributed random rotations (Shoemake quaternions), and
	tools to check that a set of rotations is uniform.

    view: builds scenes (geometries and arrows) for external 3D viewers.

    traj/xyz: multi-frame, optionally compressed, XYZ trajectories.

    rotplot: plots of the distribution of sampled rotations.

As in the v3 package, each row of a coordinate matrix represents one point in space.
Functions that need a rotation matrix R apply it as R·v to each point v.
*/
package vrc
