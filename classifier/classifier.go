// Package classifier defines the classification boundary for retinal
// images. The interface is a pure function over a decoded image so a
// real model can replace the stub without touching any caller.
package classifier

import "image"

// Labels is the closed set of classes the model distinguishes.
var Labels = []string{"cataract", "DR", "glaucoma", "normal"}

// Prediction is the outcome of classifying one normalized image.
// DisplayAccuracy is a user-facing presentation figure, independent of
// the model confidence.
type Prediction struct {
	Label           string  `json:"label"`
	Confidence      float64 `json:"confidence"`
	DisplayAccuracy float64 `json:"accuracy"`
}

// Classifier turns a normalized retinal image into a prediction.
type Classifier interface {
	Classify(img image.Image) Prediction
}
