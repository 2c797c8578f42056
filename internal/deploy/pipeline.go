package deploy

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deployer.go -package=mocks chunkwise/internal/deploy Deployer

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"chunkwise/internal/contextutil"
	"chunkwise/internal/llm"
	"chunkwise/internal/service"
	"chunkwise/internal/storage"
	"chunkwise/internal/vectorstore"
)

// DefaultBatchSize is how many chunk texts are sent per embeddings request.
const DefaultBatchSize = 32

// chunkNamespace scopes chunk point IDs so they are stable across deploys.
var chunkNamespace = uuid.MustParse("6f0c7a52-3d1e-4b8e-9a57-2f64c1d0b9e3")

// Deployer pushes a workflow's chunks to the vector store.
type Deployer interface {
	// Start deploys the workflow in the background.
	Start(ctx context.Context, workflowID string)
}

// Result summarises one deployment.
type Result struct {
	WorkflowID string `json:"workflow_id"`
	Collection string `json:"collection"`
	Chunks     int    `json:"chunks"`
	Dropped    int    `json:"dropped"`
}

// Pipeline chunks a workflow's document, embeds the chunks and stores them in
// SQLite and Qdrant.
type Pipeline struct {
	workflows   service.WorkflowService
	chunker     service.VisualizationService
	chunks      storage.ChunkStore
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	vectorSize  int
	batchSize   int

	wg sync.WaitGroup
}

// NewPipeline creates a deploy pipeline writing to collection.
func NewPipeline(
	workflows service.WorkflowService,
	chunker service.VisualizationService,
	chunks storage.ChunkStore,
	embedder llm.Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	vectorSize int,
) *Pipeline {
	return &Pipeline{
		workflows:   workflows,
		chunker:     chunker,
		chunks:      chunks,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		vectorSize:  vectorSize,
		batchSize:   DefaultBatchSize,
	}
}

// Start runs Deploy in a goroutine that outlives the request. Failures are
// logged. Use Wait to let running deployments finish.
func (p *Pipeline) Start(ctx context.Context, workflowID string) {
	ctx = context.WithoutCancel(ctx)
	p.wg.Go(func() {
		if _, err := p.Deploy(ctx, workflowID); err != nil {
			contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "deploy failed", "workflow_id", workflowID, "error", err)
		}
	})
}

// Wait blocks until every started deployment has returned.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Deploy replaces the stored chunks of a workflow with freshly embedded ones.
func (p *Pipeline) Deploy(ctx context.Context, workflowID string) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	wf, err := p.workflows.Get(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if wf.Document == "" || wf.ChunkingStrategy == nil {
		return nil, &service.ValidationError{Field: "workflow", Message: "document and chunking strategy are required to deploy"}
	}

	chunked, err := p.chunker.Chunk(ctx, *wf.ChunkingStrategy, wf.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to chunk document: %w", err)
	}
	if len(chunked.Chunks) == 0 {
		return nil, &service.ValidationError{Field: "document", Message: "no chunks to deploy"}
	}

	if err := p.vectorStore.EnsureCollection(ctx, p.collection, p.vectorSize); err != nil {
		return nil, external("failed to prepare collection", err)
	}

	oldIDs, err := p.chunks.ListIDsByWorkflow(ctx, workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list old chunk IDs: %w", err)
	}

	texts := make([]string, len(chunked.Chunks))
	for i, c := range chunked.Chunks {
		texts[i] = c.Text
	}
	embeddings, err := p.embed(ctx, texts)
	if err != nil {
		return nil, err
	}

	records := make([]storage.ChunkRecord, len(chunked.Chunks))
	points := make([]vectorstore.Point, len(chunked.Chunks))
	for i, c := range chunked.Chunks {
		id := chunkID(workflowID, i)
		records[i] = storage.ChunkRecord{
			ID:         id,
			WorkflowID: workflowID,
			ChunkIndex: i,
			StartIndex: c.StartIndex,
			EndIndex:   c.EndIndex,
			Text:       c.Text,
		}

		meta := map[string]any{
			"workflow_id": workflowID,
			"chunk_index": i,
			"start_index": c.StartIndex,
			"end_index":   c.EndIndex,
			"text":        c.Text,
		}
		if c.TokenCount != nil {
			meta["token_count"] = *c.TokenCount
		}
		points[i] = vectorstore.Point{ID: id, Vec: embeddings[i], Meta: meta}
	}

	if err := p.chunks.Replace(ctx, workflowID, records); err != nil {
		return nil, fmt.Errorf("failed to record chunks: %w", err)
	}
	if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
		return nil, external("failed to upsert vectors", err)
	}
	p.removeStalePoints(ctx, oldIDs, records)

	logger.InfoContext(ctx, "deployed workflow",
		"workflow_id", workflowID,
		"collection", p.collection,
		"chunks", len(points),
		"dropped", len(chunked.Dropped),
	)
	return &Result{
		WorkflowID: workflowID,
		Collection: p.collection,
		Chunks:     len(points),
		Dropped:    len(chunked.Dropped),
	}, nil
}

// removeStalePoints deletes points of an earlier deployment that the new
// chunks did not overwrite. Failures leave orphaned points and are logged.
func (p *Pipeline) removeStalePoints(ctx context.Context, oldIDs []string, records []storage.ChunkRecord) {
	current := make(map[string]bool, len(records))
	for _, r := range records {
		current[r.ID] = true
	}
	var stale []string
	for _, id := range oldIDs {
		if !current[id] {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return
	}

	if err := p.vectorStore.Delete(ctx, p.collection, stale); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to delete stale chunks from Qdrant", "error", err, "count", len(stale))
	}
}

// embed sends texts to the embedder in batches and checks every vector came back.
func (p *Pipeline) embed(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += p.batchSize {
		end := min(start+p.batchSize, len(texts))
		batch, err := p.embedder.EmbedTexts(ctx, texts[start:end])
		if err != nil {
			return nil, external("failed to generate embeddings", err)
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("%w: embedding count mismatch: expected %d, got %d", service.ErrExternalService, end-start, len(batch))
		}
		embeddings = append(embeddings, batch...)
	}
	return embeddings, nil
}

// external marks err as a failure of the embedder or vector store.
func external(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, service.ErrExternalService, err)
}

// chunkID derives the point ID of the index-th chunk of a workflow.
func chunkID(workflowID string, index int) string {
	return uuid.NewSHA1(chunkNamespace, []byte(workflowID+"/"+strconv.Itoa(index))).String()
}
