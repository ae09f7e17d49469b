// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the model, view, and projection state of the scene.
// The model spins about Axis at AngularVelocity; the camera looks
// from Eye at Target with a left-handed, zero-to-one depth projection.
type Transform struct {

	// Angle is the current model rotation about Axis, in radians,
	// kept in [0, 2π).
	Angle float32

	// AngularVelocity is the rotation speed in radians per second.
	AngularVelocity float32

	// Axis is the rotation axis of the model.
	Axis mgl32.Vec3

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// FovY is the vertical field of view in radians.
	FovY float32

	Near float32
	Far  float32
}

// NewTransform returns the default [Transform] spinning at the given
// speed in degrees per second.
func NewTransform(degreesPerSecond float32) Transform {
	return Transform{
		AngularVelocity: mgl32.DegToRad(degreesPerSecond),
		Axis:            mgl32.Vec3{0, 1, 0},
		Eye:             mgl32.Vec3{0, 0, 3},
		Up:              mgl32.Vec3{0, 1, 0},
		FovY:            mgl32.DegToRad(80),
		Near:            0.1,
		Far:             1000,
	}
}

// Advance rotates the model by AngularVelocity times dt.
// Rotation depends only on total elapsed time, not on how
// it is divided into frames.
func (tr *Transform) Advance(dt time.Duration) {
	tr.Angle = math32.Mod(tr.Angle+tr.AngularVelocity*float32(dt.Seconds()), 2*math32.Pi)
	if tr.Angle < 0 {
		tr.Angle += 2 * math32.Pi
	}
}

// Model returns the model matrix.
func (tr *Transform) Model() mgl32.Mat4 {
	return mgl32.HomogRotate3D(tr.Angle, tr.Axis.Normalize())
}

// View returns the view matrix.
func (tr *Transform) View() mgl32.Mat4 {
	return LookAtLH(tr.Eye, tr.Target, tr.Up)
}

// Projection returns the projection matrix for the given aspect ratio.
func (tr *Transform) Projection(aspect float32) mgl32.Mat4 {
	return PerspectiveLHZO(tr.FovY, aspect, tr.Near, tr.Far)
}

// MVP returns projection * view * model for the given aspect ratio.
func (tr *Transform) MVP(aspect float32) mgl32.Mat4 {
	return tr.Projection(aspect).Mul4(tr.View()).Mul4(tr.Model())
}

// PerspectiveLHZO returns a left-handed perspective projection
// that maps depth to [0, 1], as WebGPU clip space expects.
// fovy is in radians.
func PerspectiveLHZO(fovy, aspect, near, far float32) mgl32.Mat4 {
	h := 1 / math32.Tan(fovy/2)
	w := h / aspect
	r := far / (far - near)
	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}

// LookAtLH returns a left-handed view matrix looking from eye at target.
func LookAtLH(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	f := target.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)
	return mgl32.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}
}
