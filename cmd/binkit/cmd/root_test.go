package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/binkit/pkg/config"
	"github.com/ssargent/binkit/pkg/pixel"
)

// resetFlags restores every flag to its default so package-level commands
// can run more than once in a test binary.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and stdin and returns
// everything written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestChecksumCommand(t *testing.T) {
	out, err := executeCommand(t, "", "checksum", "crc32", "123456789")
	require.NoError(t, err)
	assert.Equal(t, "cbf43926\n", out)

	out, err = executeCommand(t, "Wikipedia", "checksum", "adler32")
	require.NoError(t, err)
	assert.Equal(t, "11e60398\n", out)

	out, err = executeCommand(t, "", "checksum", "crc32", "--hex", "31 32 33 34 35 36 37 38 39")
	require.NoError(t, err)
	assert.Equal(t, "cbf43926\n", out)

	_, err = executeCommand(t, "", "checksum", "md5", "x")
	assert.Error(t, err)

	_, err = executeCommand(t, "", "checksum", "crc32", "--hex", "zz")
	assert.Error(t, err)
}

func TestSHA1Command(t *testing.T) {
	out, err := executeCommand(t, "", "sha1", "abc")
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d\n", out)
}

func TestBase64Commands(t *testing.T) {
	out, err := executeCommand(t, "", "base64", "encode", "Man")
	require.NoError(t, err)
	assert.Equal(t, "TWFu\n", out)

	out, err = executeCommand(t, "", "base64", "decode", "--hex", "TWFu")
	require.NoError(t, err)
	assert.Equal(t, "4d616e\n", out)

	out, err = executeCommand(t, "TWFu\n", "base64", "decode")
	require.NoError(t, err)
	assert.Equal(t, "Man", out)
}

func TestVLQCommands(t *testing.T) {
	out, err := executeCommand(t, "", "vlq", "encode", "--", "0", "1", "-1", "16")
	require.NoError(t, err)
	assert.Equal(t, "ACDgB\n", out)

	out, err = executeCommand(t, "", "vlq", "decode", "ACDgB")
	require.NoError(t, err)
	assert.Equal(t, "0 1 -1 16\n", out)

	_, err = executeCommand(t, "", "vlq", "decode", "g")
	assert.Error(t, err)

	_, err = executeCommand(t, "", "vlq", "encode", "one")
	assert.Error(t, err)
}

func TestUTFCommands(t *testing.T) {
	t.Run("decode utf16 with bom", func(t *testing.T) {
		out, err := executeCommand(t, "", "utf", "decode", "--encoding", "utf16", "--hex", "feff0041")
		require.NoError(t, err)
		assert.Equal(t, "A\n", out)
	})

	t.Run("lenient codepoints", func(t *testing.T) {
		out, err := executeCommand(t, "", "utf", "decode", "--hex", "--codepoints", "41ff")
		require.NoError(t, err)
		assert.Equal(t, "U+0041 U+FFFD\n", out)
	})

	t.Run("strict fails", func(t *testing.T) {
		_, err := executeCommand(t, "", "utf", "decode", "--strict", "--hex", "41ff")
		assert.Error(t, err)
	})

	t.Run("encode utf16le with bom", func(t *testing.T) {
		out, err := executeCommand(t, "", "utf", "encode", "-e", "utf16", "--endian", "le", "--bom", "--hex", "A")
		require.NoError(t, err)
		assert.Equal(t, "fffe4100\n", out)
	})

	t.Run("encode utf32", func(t *testing.T) {
		out, err := executeCommand(t, "", "utf", "encode", "-e", "utf-32", "--hex", "€")
		require.NoError(t, err)
		assert.Equal(t, "000020ac\n", out)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := executeCommand(t, "", "utf", "decode", "-e", "ebcdic", "x")
		assert.Error(t, err)
	})

	t.Run("bad endian", func(t *testing.T) {
		_, err := executeCommand(t, "", "utf", "encode", "-e", "utf16", "--endian", "middle", "x")
		assert.Error(t, err)
	})
}

func TestUTFCommandUsesConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Transcode.Strict = true
	require.NoError(t, config.SaveConfig(cfg, configPath))

	_, err := executeCommand(t, "", "--config", configPath, "utf", "decode", "--hex", "41ff")
	assert.Error(t, err)

	out, err := executeCommand(t, "", "--config", configPath, "utf", "decode", "--strict=false", "--hex", "--codepoints", "41ff")
	require.NoError(t, err)
	assert.Equal(t, "U+0041 U+FFFD\n", out)
}

func TestIntsCommands(t *testing.T) {
	out, err := executeCommand(t, "", "ints", "decode", "--type", "int16", "fffe0001")
	require.NoError(t, err)
	assert.Equal(t, "-2 1\n", out)

	out, err = executeCommand(t, "", "ints", "encode", "--type", "uint16", "--little-endian", "1", "0x0203")
	require.NoError(t, err)
	assert.Equal(t, "01000302\n", out)

	out, err = executeCommand(t, "", "ints", "encode", "-t", "int8", "--", "-1", "127")
	require.NoError(t, err)
	assert.Equal(t, "ff7f\n", out)

	_, err = executeCommand(t, "", "ints", "decode", "--type", "int128", "00")
	assert.Error(t, err)
}

func TestIntsCommandUsesConfiguredByteOrder(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Bytes.LittleEndian = true
	require.NoError(t, config.SaveConfig(cfg, configPath))

	out, err := executeCommand(t, "", "--config", configPath, "ints", "decode", "--type", "uint16", "0100")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = executeCommand(t, "", "--config", configPath, "ints", "decode", "--type", "uint16", "--little-endian=false", "0100")
	require.NoError(t, err)
	assert.Equal(t, "256\n", out)
}

func TestPNGCommand(t *testing.T) {
	out, err := executeCommand(t, "", "png", "--datauri", "ff0000")
	require.NoError(t, err)
	assert.Equal(t, pixel.DataURI(0xFF, 0, 0, 0xFF)+"\n", out)

	path := filepath.Join(t.TempDir(), "green.png")
	_, err = executeCommand(t, "", "png", "00ff0080", "--out", path)
	require.NoError(t, err)

	img, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pixel.RGBA(0, 0xFF, 0, 0x80), img)

	_, err = executeCommand(t, "", "png", "red")
	assert.Error(t, err)
}

func TestWebsocketCommands(t *testing.T) {
	out, err := executeCommand(t, "", "ws", "accept", "dGhlIHNhbXBsZSBub25jZQ==")
	require.NoError(t, err)
	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=\n", out)

	out, err = executeCommand(t, "", "ws", "encode", "--mask", "37fa213d", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "818537fa213d7f9f4d5158\n", out)

	out, err = executeCommand(t, "", "ws", "decode", "818537fa213d7f9f4d5158", "8900", "81")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "opcode=text")
	assert.Contains(t, lines[0], "mask=37fa213d")
	assert.Contains(t, lines[0], "payload=48656c6c6f")
	assert.Contains(t, lines[1], "opcode=ping")
	assert.Equal(t, "remaining: 1 bytes", lines[2])

	out, err = executeCommand(t, "", "ws", "encode", "--random-mask", "hi")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 2*(2+4+2))

	_, err = executeCommand(t, "", "ws", "encode", "--opcode", "ping", "--hex", strings.Repeat("00", 126))
	assert.Error(t, err)

	_, err = executeCommand(t, "", "ws", "encode", "--opcode", "bogus", "x")
	assert.Error(t, err)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, err := executeCommand(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "sha1", "abc")
	assert.Error(t, err)
}
