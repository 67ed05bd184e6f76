package scene

// NewDefaultScene wraps the default world with a camera looking at it from (0, 0, -5)
func NewDefaultScene(cameraOverrides ...CameraConfig) *SceneSetup {
	return &SceneSetup{
		Name:         "default",
		World:        NewDefaultWorld(),
		CameraConfig: applyOverrides(DefaultCameraConfig(), cameraOverrides),
	}
}
