// SPDX-License-Identifier: MPL-2.0

package runtime

// BuildRegistry returns a registry holding every runtime this build supports.
func BuildRegistry() *Registry {
	r := NewRegistry()
	r.Register(RuntimeTypeNative, NewNativeRuntime())
	r.Register(RuntimeTypePTY, NewPTYRuntime())
	return r
}

// SelectType picks the runtime type for an execution. The pty runtime is only
// chosen when requested and available; otherwise the native runtime runs.
func (r *Registry) SelectType(wantPTY bool) RuntimeType {
	if !wantPTY {
		return RuntimeTypeNative
	}
	rt, err := r.Get(RuntimeTypePTY)
	if err != nil || !rt.Available() {
		return RuntimeTypeNative
	}
	return RuntimeTypePTY
}
