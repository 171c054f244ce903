//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/kvx2vox/api"
)

func bytesArg(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

// optionsArg reads an optional {palette: bool} object; palette defaults on.
func optionsArg(args []js.Value) api.Options {
	opts := api.Options{Palette: true}
	if len(args) > 1 && args[1].Type() == js.TypeObject {
		if p := args[1].Get("palette"); p.Type() == js.TypeBoolean {
			opts.Palette = p.Bool()
		}
	}
	return opts
}

func kvx2vox(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing kvx bytes")
	}
	out, _, err := api.KVXToVOX(bytesArg(args[0]), optionsArg(args))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

func kvx2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing kvx bytes")
	}
	out, err := api.KVXToGLB(bytesArg(args[0]), optionsArg(args))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

func voxInfo(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	s, err := api.DescribeVOX(bytesArg(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	chunks := make([]any, len(s.Chunks))
	for i, c := range s.Chunks {
		chunks[i] = c
	}
	return js.ValueOf(map[string]any{
		"version": int(s.Version),
		"size":    []any{int(s.Size.X), int(s.Size.Y), int(s.Size.Z)},
		"voxels":  s.Voxels,
		"palette": s.Palette,
		"chunks":  chunks,
	})
}

func main() {
	js.Global().Set("kvx2vox", js.FuncOf(kvx2vox))
	js.Global().Set("kvx2glb", js.FuncOf(kvx2glb))
	js.Global().Set("voxInfo", js.FuncOf(voxInfo))
	select {}
}
