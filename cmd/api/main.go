package main

import (
    "errors"
    "net/http"
    "os"
    "sort"
    "strconv"
    "strings"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "id3lab/internal/data"
    "id3lab/internal/models"
    "id3lab/pkg/utils"
)

type server struct {
    logger  *zap.Logger
    workers int
    apiKey  string
}

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    workers, err := strconv.Atoi(utils.Env("ID3_WORKERS", "1"))
    if err != nil { logger.Fatal("Invalid ID3_WORKERS", zap.Error(err)) }

    s := &server{logger: logger, workers: workers, apiKey: os.Getenv("API_KEY")}
    r := s.router()

    port := utils.Env("PORT", "8080")
    logger.Info("Listening", zap.String("port", port))
    if err := r.Run(":" + port); err != nil {
        logger.Fatal("Server stopped", zap.Error(err))
    }
}

func (s *server) router() *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery(), s.accessLog)

    r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
    r.GET("/tennis", s.handleTennis)

    api := r.Group("/")
    api.Use(s.apiKeyMiddleware)
    api.POST("/tree", s.handleTree)
    api.POST("/classify", s.handleClassify)
    api.POST("/gain", s.handleGain)
    return r
}

func (s *server) accessLog(c *gin.Context) {
    c.Next()
    path := c.FullPath()
    if path == "" { path = c.Request.URL.Path }
    s.logger.Info("request",
        zap.String("method", c.Request.Method),
        zap.String("path", path),
        zap.Int("status", c.Writer.Status()),
    )
}

func (s *server) apiKeyMiddleware(c *gin.Context) {
    if s.apiKey == "" { c.Next(); return }
    if c.GetHeader("X-API-Key") != s.apiKey {
        c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
        return
    }
    c.Next()
}

type datasetReq struct {
    Target   string     `json:"target" binding:"required"`
    Features []string   `json:"features"`
    Columns  []string   `json:"columns"`
    Rows     []data.Row `json:"rows" binding:"required,min=1"`
}

type classifyReq struct {
    datasetReq
    Query data.Row `json:"query" binding:"required"`
}

// dataset fills in Columns from the row keys, sorted, when the client
// leaves them out.
func (r datasetReq) dataset() data.Dataset {
    cols := r.Columns
    if len(cols) == 0 {
        seen := map[string]bool{}
        for _, row := range r.Rows {
            for k := range row {
                if !seen[k] { seen[k] = true; cols = append(cols, k) }
            }
        }
        sort.Strings(cols)
    }
    return data.Dataset{Columns: cols, Rows: r.Rows}
}

func (s *server) build(req datasetReq) (models.Tree, error) {
    b := models.NewID3()
    b.Workers = s.workers
    b.Logger = s.logger
    ds := req.dataset()
    if req.Features != nil {
        return b.BuildWithFeatures(ds, req.Features, req.Target)
    }
    return b.Build(ds, req.Target)
}

func (s *server) handleTennis(c *gin.Context) {
    s.respondTree(c, datasetReq{Target: data.TennisTarget, Columns: data.Tennis().Columns, Rows: data.Tennis().Rows})
}

func (s *server) handleTree(c *gin.Context) {
    var req datasetReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}); return
    }
    s.respondTree(c, req)
}

func (s *server) respondTree(c *gin.Context, req datasetReq) {
    tree, err := s.build(req)
    if err != nil { s.fail(c, err); return }
    var sb strings.Builder
    if err := models.Render(&sb, tree); err != nil { s.fail(c, err); return }
    c.JSON(http.StatusOK, gin.H{
        "tree":     tree,
        "rendered": sb.String(),
        "depth":    models.Depth(tree),
        "leaves":   models.Leaves(tree),
    })
}

func (s *server) handleClassify(c *gin.Context) {
    var req classifyReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}); return
    }
    tree, err := s.build(req.datasetReq)
    if err != nil { s.fail(c, err); return }
    label, err := models.Classify(tree, req.Query)
    if err != nil { s.fail(c, err); return }
    c.JSON(http.StatusOK, gin.H{"label": label})
}

func (s *server) handleGain(c *gin.Context) {
    var req datasetReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}); return
    }
    ds := req.dataset()
    gains, err := models.GainReport(ds, req.Features, req.Target)
    if err != nil { s.fail(c, err); return }
    c.JSON(http.StatusOK, gin.H{"entropy": models.Entropy(ds.Column(req.Target)), "gains": gains})
}

func (s *server) fail(c *gin.Context, err error) {
    switch {
    case errors.Is(err, models.ErrInvalidInput):
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    case errors.Is(err, models.ErrUnseenValue):
        c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
    default:
        s.logger.Error("request failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
    }
}
