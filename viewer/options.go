package viewer

import "github.com/smasonuk/hyperview"

// OptionsFromConfig copies the render section of cfg over DefaultOptions.
func OptionsFromConfig(cfg hyperview.RenderConfig) Options {
	opts := DefaultOptions()
	opts.Faces = cfg.Faces
	opts.Lines = cfg.Lines
	opts.CullBackfaces = cfg.CullBackfaces
	opts.LineWidth = cfg.LineWidth
	return opts
}
