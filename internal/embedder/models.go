package embedder

import "embed"

// modelFS embeds the ONNX export of the embedding model (all-MiniLM-L6-v2,
// 384 dimensions) that New() extracts to a temp directory at startup. The
// actual model weights (model.onnx, tokenizer.json, config.json) are a
// build-time asset fetched by the project's model-sync tooling, not
// hand-written source — see DESIGN.md for why the placeholder here ships
// without them in this tree.
//
//go:embed all:models
var modelFS embed.FS
