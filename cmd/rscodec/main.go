// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/urfave/cli"
	"github.com/xtaci/rscodec/rs"
	"github.com/xtaci/rscodec/std"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "input,i",
		Value: "-",
		Usage: "input file, or - for stdin",
	},
	cli.StringFlag{
		Name:  "output,o",
		Value: "-",
		Usage: "output file, or - for stdout",
	},
	cli.IntFlag{
		Name:  "datashard,ds",
		Value: 170,
		Usage: "message size per block, in bytes (k)",
	},
	cli.IntFlag{
		Name:  "parityshard,ps",
		Value: 32,
		Usage: "parity symbols per block, in bytes (t); datashard+parityshard must not exceed 255",
	},
	cli.StringFlag{
		Name:   "key",
		Value:  "",
		Usage:  "pre-shared passphrase; when set, the payload is encrypted before RS encoding",
		EnvVar: "RSCODEC_KEY",
	},
	cli.StringFlag{
		Name:  "crypt",
		Value: "aes",
		Usage: "aes, aes-128, aes-192, salsa20, blowfish, twofish, cast5, 3des, tea, xtea",
	},
	cli.BoolFlag{
		Name:  "nocomp",
		Usage: "disable snappy compression",
	},
	cli.StringFlag{
		Name:  "log",
		Value: "",
		Usage: "specify a log file to output, default goes to stderr",
	},
	cli.StringFlag{
		Name:  "statslog",
		Value: "",
		Usage: "collect codec stats to file, aware of timeformat in golang, like: ./stats-20060102.log",
	},
	cli.IntFlag{
		Name:  "statsperiod",
		Value: 60,
		Usage: "stats collect period, in seconds",
	},
	cli.StringFlag{
		Name:  "c",
		Value: "",
		Usage: "config from json file, which will override the command from shell",
	},
	cli.BoolFlag{
		Name:  "quiet",
		Usage: "to suppress per-run summary logging",
	},
}

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "rscodec"
	myApp.Usage = "systematic Reed-Solomon block codec"
	myApp.Version = VERSION
	myApp.Commands = []cli.Command{
		{
			Name:  "encode",
			Usage: "RS-encode a file into a parity-protected block stream",
			Flags: commonFlags,
			Action: func(c *cli.Context) error {
				return run(c, true)
			},
		},
		{
			Name:  "decode",
			Usage: "verify and repair a block stream produced by encode",
			Flags: commonFlags,
			Action: func(c *cli.Context) error {
				return run(c, false)
			},
		},
	}
	myApp.Run(os.Args)
}

func run(c *cli.Context, encoding bool) error {
	config := Config{}
	config.Input = c.String("input")
	config.Output = c.String("output")
	config.DataShard = c.Int("datashard")
	config.ParityShard = c.Int("parityshard")
	config.Key = c.String("key")
	config.Crypt = c.String("crypt")
	config.NoComp = c.Bool("nocomp")
	config.Log = c.String("log")
	config.StatsLog = c.String("statslog")
	config.StatsPeriod = c.Int("statsperiod")
	config.Quiet = c.Bool("quiet")

	if c.String("c") != "" {
		if err := parseJSONConfig(&config, c.String("c")); err != nil {
			return err
		}
	}

	if config.Log != "" {
		f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := rs.ValidateParams(config.DataShard, config.ParityShard); err != nil {
		return err
	}

	ctx, err := rs.NewContext(config.ParityShard)
	if err != nil {
		return err
	}

	stats := &std.Stats{}
	if config.StatsLog != "" {
		go std.StatsLogger(config.StatsLog, config.StatsPeriod, stats)
	}

	in, err := openInput(config.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(config.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	if !config.Quiet {
		log.Println("version:", VERSION)
		log.Println("datashard:", config.DataShard, "parityshard:", config.ParityShard)
		log.Println("compression:", !config.NoComp)
		if config.Key != "" {
			log.Println("encryption:", config.Crypt)
		}
	}

	if encoding {
		return runEncode(ctx, &config, in, out, stats)
	}
	return runDecode(ctx, &config, in, out, stats)
}

func runEncode(ctx *rs.Context, config *Config, in io.Reader, out io.Writer, stats *std.Stats) error {
	payload, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	if !config.NoComp {
		payload = std.CompressBlock(payload)
	}
	if config.Key != "" {
		enc, effective := std.SelectCipher(config.Crypt, []byte(config.Key))
		config.Crypt = effective
		cipherText := make([]byte, len(payload))
		enc.XORKeyStream(cipherText, payload)
		payload = cipherText
	}

	blocks, err := std.EncodeStream(ctx, out, bytes.NewReader(payload), config.DataShard, config.ParityShard, stats)
	if !config.Quiet {
		log.Println("blocks written:", blocks)
	}
	return err
}

func runDecode(ctx *rs.Context, config *Config, in io.Reader, out io.Writer, stats *std.Stats) error {
	var decoded bytes.Buffer
	blocks, corrections, err := std.DecodeStream(ctx, &decoded, in, config.DataShard, config.ParityShard, stats)
	if !config.Quiet {
		log.Println("blocks read:", blocks, "symbols corrected:", corrections)
	}
	if err != nil {
		return err
	}

	payload := decoded.Bytes()
	if config.Key != "" {
		dec, effective := std.SelectCipher(config.Crypt, []byte(config.Key))
		config.Crypt = effective
		plain := make([]byte, len(payload))
		dec.XORKeyStream(plain, payload)
		payload = plain
	}
	if !config.NoComp {
		decompressed, err := std.DecompressBlock(payload)
		if err != nil {
			return err
		}
		payload = decompressed
	}

	_, err = out.Write(payload)
	return err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
