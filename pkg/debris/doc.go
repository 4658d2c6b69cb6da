// Package debris generates random convex polyhedra approximating
// irregular debris fragments. Generation is a fixed pipeline: sample a
// perturbed point cloud on the unit sphere, rescale it so its maximum
// pairwise distance matches the requested characteristic length, extract
// the convex hull, and package the hull as an exportable triangle mesh.
package debris
