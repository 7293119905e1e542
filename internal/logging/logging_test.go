package logging_test

import (
	"bytes"
	"encoding/json"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/gogpu/pixfilter/internal/logging"
)

var _ = ginkgo.Describe("Configure", func() {
	var (
		logger *logrus.Logger
		buffer *bytes.Buffer
	)

	ginkgo.BeforeEach(func() {
		buffer = &bytes.Buffer{}
		logger = logrus.New()
		logger.SetOutput(buffer)
	})

	ginkgo.It("should accept every listed format", func() {
		for _, format := range logging.Formats {
			gomega.Expect(logging.Configure(logger, format, logrus.InfoLevel)).To(gomega.Succeed())
		}
	})

	ginkgo.It("should reject unknown formats", func() {
		err := logging.Configure(logger, "xml", logrus.InfoLevel)
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("invalid log format specified: xml"))
	})

	ginkgo.It("should write JSON records in json format", func() {
		gomega.Expect(logging.Configure(logger, "json", logrus.DebugLevel)).To(gomega.Succeed())

		logger.WithField("operation", "blur").Debug("filter applied")

		var record map[string]any
		gomega.Expect(json.Unmarshal(buffer.Bytes(), &record)).To(gomega.Succeed())
		gomega.Expect(record).To(gomega.HaveKeyWithValue("msg", "filter applied"))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("operation", "blur"))
		gomega.Expect(record).To(gomega.HaveKeyWithValue("level", "debug"))
	})

	ginkgo.It("should apply the level", func() {
		gomega.Expect(logging.Configure(logger, "logfmt", logrus.WarnLevel)).To(gomega.Succeed())

		logger.Info("hidden")
		logger.Warn("shown")

		gomega.Expect(buffer.String()).NotTo(gomega.ContainSubstring("hidden"))
		gomega.Expect(buffer.String()).To(gomega.ContainSubstring("shown"))
	})
})

var _ = ginkgo.Describe("LevelFor", func() {
	ginkgo.DescribeTable("maps verbosity flags",
		func(verbose int, debug bool, want logrus.Level) {
			gomega.Expect(logging.LevelFor(verbose, debug)).To(gomega.Equal(want))
		},
		ginkgo.Entry("no flags", 0, false, logrus.WarnLevel),
		ginkgo.Entry("-v", 1, false, logrus.InfoLevel),
		ginkgo.Entry("-vv", 2, false, logrus.DebugLevel),
		ginkgo.Entry("-vvv", 3, false, logrus.TraceLevel),
		ginkgo.Entry("--debug", 0, true, logrus.DebugLevel),
		ginkgo.Entry("--debug -v", 1, true, logrus.DebugLevel),
		ginkgo.Entry("--debug -vvv", 4, true, logrus.TraceLevel),
	)
})
