// Package quarkgl is a small software emulation of the OpenGL 2.1 subset the
// demo series needs.
//
// A Context holds buffer objects, the fixed-function matrix stacks, an
// optional Program with Go vertex and fragment stages, texture units and a
// depth buffer. Draw calls read vertex bytes back through a mesh.Layout, so a
// layout that does not match the uploaded data corrupts the output just as it
// would on a GPU.
//
// Pipeline:
//
//	buffer bytes → attribute fetch → vertex stage → clip → raster → depth → fragment stage → Target.
//
// Rendering draws into a caller-provided Target. Backend adapts a Context to
// the render.Backend contract.
package quarkgl
