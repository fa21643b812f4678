// Package model provides a small linear regression model used by the demo
// command and by tests that need real state round-trips.
package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// A Linear is a linear regression model trained with full-batch gradient
// descent. It implements both train.State and train.EpochRunner.
type Linear struct {
	weights *mat.VecDense
	bias    float64

	learningRate float64

	x *mat.Dense
	y *mat.VecDense
}

// NewLinear creates a linear model with the given number of features.
func NewLinear(features int, learningRate float64) *Linear {
	return &Linear{
		weights:      mat.NewVecDense(features, nil),
		learningRate: learningRate,
	}
}

// SetData sets the dataset the model trains on. X is a sample-by-feature
// matrix and y holds one target per sample.
func (m *Linear) SetData(x *mat.Dense, y *mat.VecDense) {
	rows, cols := x.Dims()

	if cols != m.weights.Len() {
		panic(fmt.Sprintf("expected %d features, got %d",
			m.weights.Len(), cols))
	}

	if rows != y.Len() {
		panic(fmt.Sprintf("got %d samples but %d targets", rows, y.Len()))
	}

	m.x = x
	m.y = y
}

// Predict returns the model output for one feature vector.
func (m *Linear) Predict(x mat.Vector) float64 {
	return mat.Dot(m.weights, x) + m.bias
}

// Loss returns the mean squared error over the dataset.
func (m *Linear) Loss() float64 {
	rows, _ := m.x.Dims()

	sum := 0.0
	for i := 0; i < rows; i++ {
		diff := m.Predict(m.x.RowView(i)) - m.y.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(rows)
}

// RunEpoch performs one full-batch gradient descent step.
func (m *Linear) RunEpoch(_ int) error {
	if m.x == nil {
		return fmt.Errorf("model has no dataset")
	}

	rows, cols := m.x.Dims()

	gradW := make([]float64, cols)
	gradB := 0.0

	for i := 0; i < rows; i++ {
		diff := m.Predict(m.x.RowView(i)) - m.y.AtVec(i)

		for j := 0; j < cols; j++ {
			gradW[j] += 2 * diff * m.x.At(i, j)
		}

		gradB += 2 * diff
	}

	for j := 0; j < cols; j++ {
		w := m.weights.AtVec(j)
		m.weights.SetVec(j, w-m.learningRate*gradW[j]/float64(rows))
	}

	m.bias -= m.learningRate * gradB / float64(rows)

	return nil
}

// Serialize returns the model parameters as a plain map.
func (m *Linear) Serialize() (map[string]any, error) {
	weights := make([]any, m.weights.Len())
	for i := range weights {
		weights[i] = m.weights.AtVec(i)
	}

	return map[string]any{
		"weights": weights,
		"bias":    m.bias,
	}, nil
}

// Deserialize restores the model parameters. The stored weight vector must
// have the same length as the current model.
func (m *Linear) Deserialize(data map[string]any) error {
	rawWeights, ok := data["weights"].([]any)
	if !ok {
		return fmt.Errorf("weights missing or malformed")
	}

	if len(rawWeights) != m.weights.Len() {
		return fmt.Errorf("weight shape mismatch: artifact has %d, model has %d",
			len(rawWeights), m.weights.Len())
	}

	for i, raw := range rawWeights {
		w, ok := raw.(float64)
		if !ok {
			return fmt.Errorf("weight %d is not a number", i)
		}

		m.weights.SetVec(i, w)
	}

	bias, ok := data["bias"].(float64)
	if !ok {
		return fmt.Errorf("bias missing or malformed")
	}

	m.bias = bias

	return nil
}
