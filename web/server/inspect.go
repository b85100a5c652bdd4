package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Index        int                    `json:"index"` // Position of the primitive in the scene
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult describes the first primitive hit by an inspection ray
type InspectResult struct {
	Hit       bool
	Index     int
	Primitive geometry.Primitive
	Point     core.Vec3
	Normal    core.Vec3 // Outward surface normal
	Distance  float64
	FrontFace bool // The ray arrived from outside the primitive
}

// pixelCenter always samples the middle of the tent filter, so inspection rays
// pass through the pixel center
type pixelCenter struct{}

func (pixelCenter) Get1D() float64 { return 0.5 }
func (pixelCenter) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }

// inspectPixel casts a ray through the center of pixel (x, y), with y counted
// from the top of the image, and reports the nearest hit
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) (InspectResult, error) {
	camera, err := renderer.NewCamera(sceneObj.CameraConfig, width, height, 1)
	if err != nil {
		return InspectResult{}, err
	}

	ray := camera.GetRay(x, height-1-y, 0, 0, pixelCenter{})
	distance, index, ok := sceneObj.Intersect(ray)
	if !ok {
		return InspectResult{Hit: false, Index: -1}, nil
	}

	primitive := sceneObj.Primitives[index]
	point := ray.At(distance)
	normal := primitive.NormalAt(point)
	return InspectResult{
		Hit:       true,
		Index:     index,
		Primitive: primitive,
		Point:     point,
		Normal:    normal,
		Distance:  distance,
		FrontFace: normal.Dot(ray.Direction) < 0,
	}, nil
}

func triple(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo describes the shading attributes of a surface
func extractMaterialInfo(surface *material.Surface) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"albedo": triple(surface.Albedo),
		"color":  hexColor(surface.Albedo),
	}
	if surface.IsEmissive() {
		properties["emission"] = triple(surface.Emission)
	}
	if surface.Material.Kind == material.KindRefractive {
		properties["refractiveIndex"] = surface.Material.RefractiveIndex
	}
	return surface.Material.Kind.String(), properties
}

// extractGeometryInfo describes the shape of a primitive
func extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["center"] = triple(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// parsePixel reads a required pixel coordinate in [0, limit)
func parsePixel(r *http.Request, key string, limit int) (int, error) {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s coordinate", key)
	}
	if value < 0 || value >= limit {
		return 0, fmt.Errorf("%s coordinate %d out of bounds [0, %d)", key, value, limit)
	}
	return value, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	x, err := parsePixel(r, "x", req.Width)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parsePixel(r, "y", req.Height)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := inspectPixel(sceneObj, req.Width, req.Height, x, y)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Index: -1})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.Primitive.Surface())
	geometryType, geometryProps := extractGeometryInfo(result.Primitive)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Index:        result.Index,
		Point:        triple(result.Point),
		Normal:       triple(result.Normal),
		Distance:     result.Distance,
		FrontFace:    result.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
