package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// State is a result of the deployment persisted between runs.
type State struct {
	// RunID identifies the deployment run which produced the state.
	RunID uuid.UUID    `json:"runId"`
	Token util.Uint160 `json:"unionGovernanceTokenContract"`
	Sale  util.Uint160 `json:"unionTokenSaleContract"`
	Lock  util.Uint160 `json:"voluntaryLockContract"`
}

// ReadState reads JSON state file. Missing file results in zero State.
func ReadState(path string) (State, error) {
	var st State

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("read state file: %w", err)
	}

	err = json.Unmarshal(data, &st)
	if err != nil {
		return st, fmt.Errorf("decode state file: %w", err)
	}

	return st, nil
}

// WriteState saves the state into JSON file.
func WriteState(path string, st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	err = os.WriteFile(path, append(data, '\n'), 0o644)
	if err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
