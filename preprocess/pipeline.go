package preprocess

import "github.com/clustergo/clustergo/frame"

// Pipeline chains transformers; each step is fitted on the output of the
// previous one.
type Pipeline struct {
	steps []Transformer
}

// NewPipeline creates a Pipeline from the given steps, applied in order.
func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits every step, feeding each the transformed output of its
// predecessor.
func (p *Pipeline) Fit(f *frame.Frame) error {
	_, err := p.FitTransform(f)
	return err
}

// Transform applies all fitted steps in order.
func (p *Pipeline) Transform(f *frame.Frame) (*frame.Frame, error) {
	out := f
	for _, step := range p.steps {
		var err error
		out, err = step.Transform(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FitTransform fits and applies all steps in one pass.
func (p *Pipeline) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	out := f
	for _, step := range p.steps {
		var err error
		out, err = FitTransform(step, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
