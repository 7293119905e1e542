package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/gogpu/pixfilter/internal/logging"
)

var _ = ginkgo.Describe("NewSlogHandler", func() {
	var (
		logger *logrus.Logger
		buffer *bytes.Buffer
		log    *slog.Logger
	)

	// lastRecord decodes the most recent JSON line written by logger.
	lastRecord := func() map[string]any {
		lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
		var record map[string]any
		gomega.Expect(json.Unmarshal(lines[len(lines)-1], &record)).To(gomega.Succeed())
		return record
	}

	ginkgo.BeforeEach(func() {
		buffer = &bytes.Buffer{}
		logger = logrus.New()
		logger.SetOutput(buffer)
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.DebugLevel)
		log = slog.New(logging.NewSlogHandler(logger))
	})

	ginkgo.It("should forward message, level and attributes", func() {
		log.Debug("filter applied", "operation", "sharpen", "bands", 4)

		record := lastRecord()
		gomega.Expect(record).To(gomega.HaveKeyWithValue("msg", "filter applied"))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("level", "debug"))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("operation", "sharpen"))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("bands", float64(4)))
	})

	ginkgo.It("should map warn and error levels", func() {
		log.Warn("rejected")
		gomega.Expect(lastRecord()).To(gomega.HaveKeyWithValue("level", "warning"))

		log.Error("failed")
		gomega.Expect(lastRecord()).To(gomega.HaveKeyWithValue("level", "error"))
	})

	ginkgo.It("should respect the logrus level", func() {
		logger.SetLevel(logrus.WarnLevel)

		gomega.Expect(log.Enabled(context.Background(), slog.LevelDebug)).To(gomega.BeFalse())
		gomega.Expect(log.Enabled(context.Background(), slog.LevelWarn)).To(gomega.BeTrue())

		log.Info("dropped")
		gomega.Expect(buffer.Len()).To(gomega.BeZero())
	})

	ginkgo.It("should keep attributes added with With", func() {
		log.With("run", "abc").Info("first", "n", 1)

		record := lastRecord()
		gomega.Expect(record).To(gomega.HaveKeyWithValue("run", "abc"))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("n", float64(1)))
	})

	ginkgo.It("should prefix grouped keys", func() {
		log.WithGroup("image").Info("created", "width", 8, slog.Group("px", "r", 1))

		record := lastRecord()
		gomega.Expect(record).To(gomega.HaveKeyWithValue("image.width", float64(8)))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("image.px.r", float64(1)))
	})
})
