package servecmder

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/papercomputeco/graycalc/pkg/config"
)

var _ = Describe("Serve Command", func() {
	var (
		tmpDir     string
		configPath string
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		configPath = filepath.Join(tmpDir, "config.toml")
		Expect(os.WriteFile(configPath, []byte(`
[server]
listen = ":7000"
debug = true
`), 0o600)).To(Succeed())
	})

	// parse builds the command and parses args without running it.
	parse := func(args ...string) (*serveCommander, *cobra.Command) {
		cmder := &serveCommander{}
		cmd := newServeCmd(cmder)
		Expect(cmd.ParseFlags(args)).To(Succeed())
		return cmder, cmd
	}

	It("reads server settings from the config file", func() {
		cmder, cmd := parse("--config", configPath)

		s, err := cmder.settings(cmd)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(config.ServerConfig{Listen: ":7000", Debug: true}))
	})

	It("lets flags override the file", func() {
		cmder, cmd := parse("--config", configPath, "--listen", "127.0.0.1:9000", "--debug=false", "--json-logs")

		s, err := cmder.settings(cmd)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Listen).To(Equal("127.0.0.1:9000"))
		Expect(s.Debug).To(BeFalse())
		Expect(s.JSONLogs).To(BeTrue())
	})

	It("rejects an empty listen flag", func() {
		cmder, cmd := parse("--config", configPath, "--listen", "")

		_, err := cmder.settings(cmd)
		Expect(err).To(MatchError(ContainSubstring("server.listen must not be empty")))
	})

	It("fails on a missing explicit config", func() {
		cmder, cmd := parse("--config", filepath.Join(tmpDir, "nope.toml"))

		_, err := cmder.settings(cmd)
		Expect(err).To(HaveOccurred())
	})

	It("fails before listening when the assets directory has no page", func() {
		cmd := NewServeCmd()
		cmd.SetArgs([]string{"--config", configPath, "--assets-dir", tmpDir})
		cmd.SetOut(GinkgoWriter)
		cmd.SetErr(GinkgoWriter)

		err := cmd.ExecuteContext(context.Background())
		Expect(err).To(MatchError(ContainSubstring("could not create server")))
	})
})

type stubServer struct {
	err   error
	calls int
}

func (s *stubServer) Shutdown() error {
	s.calls++
	return s.err
}

var _ = Describe("shutdownOnDone", func() {
	run := func(srv *stubServer) *observer.ObservedLogs {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		shutdownOnDone(ctx, srv, zap.New(core))
		return logs
	}

	It("logs a failed drain", func() {
		srv := &stubServer{err: errors.New("drain timed out")}
		logs := run(srv)

		Expect(srv.calls).To(Equal(1))
		failed := logs.FilterMessage("shutdown failed").All()
		Expect(failed).To(HaveLen(1))
		Expect(failed[0].Level).To(Equal(zapcore.WarnLevel))
		Expect(failed[0].ContextMap()).To(HaveKeyWithValue("error", "drain timed out"))
	})

	It("stays quiet on a clean shutdown", func() {
		srv := &stubServer{}
		logs := run(srv)

		Expect(srv.calls).To(Equal(1))
		Expect(logs.FilterMessage("shutdown failed").Len()).To(Equal(0))
		Expect(logs.FilterMessage("shutting down").Len()).To(Equal(1))
	})
})
