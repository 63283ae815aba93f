package sdimage

import "time"

const (
	// DefaultBaseURL is the default Stable Diffusion WebUI endpoint.
	DefaultBaseURL = "http://localhost:7860"

	// DefaultTimeout is the hard deadline for one synthesis request.
	DefaultTimeout = 150 * time.Second

	// Fixed generation parameters; the request body never varies per call
	// except for the prompt itself.
	defaultSteps    = 20
	defaultCFGScale = 7
	defaultWidth    = 512
	defaultHeight   = 512
	defaultSampler  = "Euler a"

	// defaultNegativePrompt filters the usual synthesis artifacts.
	defaultNegativePrompt = "blurry, low quality, distorted, deformed, text, watermark, signature, extra limbs, bad anatomy"
)
