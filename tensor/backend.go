// Copyright 2026 The matchbox Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/matchbox-ml/matchbox/internal/tensor"

// Backend computes the payloads of tensors.
//
// Kernels receive operands whose shapes were already validated by the
// tensor layer and return freshly allocated results; they never modify their
// inputs. Only the random constructors and FromSlice report errors.
//
// Implementations:
//   - backend/cpu: Pure Go on top of gonum
type Backend = tensor.Backend
