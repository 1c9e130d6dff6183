package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/ironsheep/sdf-tools-mcp/internal/config"
	"github.com/ironsheep/sdf-tools-mcp/internal/imaging"
	"github.com/ironsheep/sdf-tools-mcp/internal/sdf"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sdf_compute", "sdf_sample").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "elapsed", elapsed, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	text, err := marshalJSON(result)
	if err != nil {
		s.logger.Warn("tool result not encodable", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool call", "tool", params.Name, "elapsed", elapsed)

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "sdf_compute":
		return s.handleSDFCompute(args)
	case "sdf_sample":
		return s.handleSDFSample(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalJSON converts a value to a pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}

// field is the precision-independent view of a distance field that the
// handlers need. Both sdf.F32Field and sdf.F16Field satisfy it.
type field interface {
	Width() int
	Height() int
	At(x, y int) float32
	Target(x, y int) (tx, ty float32)
	Known(x, y int) bool
	BoundaryPixels() int
	Range() (lo, hi float32)
	Normalize(dst []float32) (*sdf.NormalizedField, error)
	NormalizeClamped(low, high float64, dst []float32) (*sdf.NormalizedField, error)
}

// fieldArgs are the arguments shared by every tool that computes a field.
type fieldArgs struct {
	Path       string          `json:"path"`
	Threshold  *int            `json:"threshold,omitempty"`
	Invert     bool            `json:"invert"`
	BlurRadius float64         `json:"blur_radius"`
	Precision  string          `json:"precision"`
	Region     *imaging.Region `json:"region,omitempty"`
}

// computeField loads, optionally crops, thresholds and transforms the image
// named by a. Defaults for threshold and precision come from the config.
func (s *Server) computeField(a fieldArgs) (field, string, error) {
	threshold := s.cfg.Threshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	if threshold < 0 || threshold > 255 {
		return nil, "", fmt.Errorf("threshold %d outside 0-255", threshold)
	}
	if a.BlurRadius < 0 {
		return nil, "", fmt.Errorf("blur_radius must not be negative")
	}
	precision := a.Precision
	if precision == "" {
		precision = s.cfg.Precision
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, "", err
	}
	if a.Region != nil {
		if img, err = imaging.Crop(img, *a.Region); err != nil {
			return nil, "", err
		}
	}

	grid, err := imaging.Threshold(img, imaging.ThresholdOptions{
		Threshold:  uint8(threshold),
		Invert:     a.Invert,
		BlurRadius: a.BlurRadius,
	})
	if err != nil {
		return nil, "", err
	}

	var f field
	switch precision {
	case config.PrecisionF32:
		f, err = sdf.ComputeF32(grid)
	case config.PrecisionF16:
		f, err = sdf.ComputeF16(grid)
	default:
		err = fmt.Errorf("unknown precision %q, want %q or %q", precision, config.PrecisionF32, config.PrecisionF16)
	}
	if err != nil {
		return nil, "", err
	}
	return f, precision, nil
}

// === Field Computation Handlers ===

type sdfComputeArgs struct {
	fieldArgs
	ClampLow   *float64 `json:"clamp_low,omitempty"`
	ClampHigh  *float64 `json:"clamp_high,omitempty"`
	Scale      float64  `json:"scale"`
	Colorize   bool     `json:"colorize"`
	OutputPath string   `json:"output_path"`
}

// ComputeResult describes a rendered distance field.
type ComputeResult struct {
	// FieldWidth and FieldHeight are the size of the transformed grid,
	// before any output scaling.
	FieldWidth  int `json:"field_width"`
	FieldHeight int `json:"field_height"`

	// MinDistance and MaxDistance are the signed distance extremes in pixels.
	// Negative values are inside the shape.
	MinDistance float32 `json:"min_distance"`
	MaxDistance float32 `json:"max_distance"`

	// BoundaryPixels counts pixels adjacent to the opposite class.
	BoundaryPixels int `json:"boundary_pixels"`

	// Precision is the storage used for the distances, "f32" or "f16".
	Precision string `json:"precision"`

	// Normalization is "full" (min to 0, max to 1), "clamped" (explicit
	// clamp_low/clamp_high) or "symmetric" (colorized, boundary at 0.5).
	Normalization string  `json:"normalization"`
	ClampLow      float64 `json:"clamp_low,omitempty"`
	ClampHigh     float64 `json:"clamp_high,omitempty"`

	Image *imaging.RenderResult `json:"image"`

	// SavedTo is the output path when one was requested.
	SavedTo string `json:"saved_to,omitempty"`
}

func (s *Server) handleSDFCompute(args json.RawMessage) (interface{}, error) {
	var a sdfComputeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if (a.ClampLow == nil) != (a.ClampHigh == nil) {
		return nil, errors.New("clamp_low and clamp_high must be given together")
	}

	f, precision, err := s.computeField(a.fieldArgs)
	if err != nil {
		return nil, err
	}
	lo, hi := f.Range()

	res := &ComputeResult{
		FieldWidth:     f.Width(),
		FieldHeight:    f.Height(),
		MinDistance:    lo,
		MaxDistance:    hi,
		BoundaryPixels: f.BoundaryPixels(),
		Precision:      precision,
	}

	var nf *sdf.NormalizedField
	switch {
	case a.ClampLow != nil:
		res.Normalization = "clamped"
		res.ClampLow, res.ClampHigh = *a.ClampLow, *a.ClampHigh
		nf, err = f.NormalizeClamped(*a.ClampLow, *a.ClampHigh, nil)
	case a.Colorize:
		// Center the ramp on the boundary so the palette's edge color
		// marks the outline.
		m := math.Max(math.Abs(float64(lo)), math.Abs(float64(hi)))
		res.Normalization = "symmetric"
		res.ClampLow, res.ClampHigh = -m, m
		nf, err = f.NormalizeClamped(-m, m, nil)
	default:
		res.Normalization = "full"
		nf, err = f.Normalize(nil)
	}
	if err != nil {
		return nil, err
	}

	var out image.Image
	if a.Colorize {
		out = imaging.Colorize(nf, s.palette)
	} else if out, err = imaging.ToGray(nf); err != nil {
		return nil, err
	}
	out = imaging.Scale(out, a.Scale)

	if a.OutputPath != "" {
		if err := imaging.Save(out, a.OutputPath); err != nil {
			return nil, err
		}
		res.SavedTo = a.OutputPath
	}

	if res.Image, err = imaging.Encode(out); err != nil {
		return nil, err
	}
	return res, nil
}

type sdfSampleArgs struct {
	fieldArgs
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

// SampleResult is the field at one requested point.
type SampleResult struct {
	Label string `json:"label,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`

	// Distance is the signed distance in pixels, negative inside.
	Distance float32 `json:"distance"`
	Inside   bool    `json:"inside"`

	// BoundaryFound is false when the image has no boundary at all. The
	// distance is then a placeholder and the target fields are omitted.
	BoundaryFound bool `json:"boundary_found"`

	// TargetX and TargetY locate the nearest boundary point.
	TargetX *float32 `json:"target_x,omitempty"`
	TargetY *float32 `json:"target_y,omitempty"`
}

// SampleResults holds samples in request order.
type SampleResults struct {
	Precision string         `json:"precision"`
	Samples   []SampleResult `json:"samples"`
}

func (s *Server) handleSDFSample(args json.RawMessage) (interface{}, error) {
	var a sdfSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("at least one point is required")
	}

	f, precision, err := s.computeField(a.fieldArgs)
	if err != nil {
		return nil, err
	}

	res := &SampleResults{Precision: precision, Samples: make([]SampleResult, len(a.Points))}
	for i, p := range a.Points {
		if p.X < 0 || p.Y < 0 || p.X >= f.Width() || p.Y >= f.Height() {
			return nil, fmt.Errorf("point (%d,%d) outside field bounds %dx%d", p.X, p.Y, f.Width(), f.Height())
		}
		d := f.At(p.X, p.Y)
		sample := SampleResult{
			Label:    p.Label,
			X:        p.X,
			Y:        p.Y,
			Distance: d,
			Inside:   d < 0,
		}
		if f.Known(p.X, p.Y) {
			tx, ty := f.Target(p.X, p.Y)
			sample.BoundaryFound = true
			sample.TargetX, sample.TargetY = &tx, &ty
		}
		res.Samples[i] = sample
	}
	return res, nil
}

// === Basic Image Information Handlers ===

type imageDimensionsArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageDimensionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}
