//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

// BuildDefaultConfig - the hard-coded defaults; the config file and the command line override these
func BuildDefaultConfig() *str.CurrentConfiguration {
	return &str.CurrentConfiguration{
		RawDir:        vv.DEFAULTRAWDIR,
		ProcessedDir:  vv.DEFAULTPROCESSEDDIR,
		OutDir:        vv.DEFAULTOUTDIR,
		CorpusDB:      vv.DEFAULTCORPUSDB,
		UseDB:         false,
		Overwrite:     false,
		Topics:        vv.LDATOPICS,
		LDAIterations: vv.LDAITER,
		Seed:          vv.LDASEED,
		BucketWidth:   vv.DEFAULTBUCKETWIDTH,
		WorkerCount:   runtime.NumCPU(),
		LogLevel:      vv.DEFAULTGOLOGLEVEL,
		BlackAndWhite: vv.BLACKANDWHITE,
		MinCleanChars: vv.MINCLEANCHARS,
		MaxNoiseRatio: vv.MAXNOISERATIO,
		FindNeighbors: false,
		SeedTerms:     strings.Split(vv.DEFAULTSEEDTERMS, ","),
		NeighborCount: vv.VECTORNEIGHBORS,
		DrawCharts:    true,
		ProfileRun:    false,
		SelfTest:      false,
	}
}

// LookForConfigFile - write a default config file on the first run so there is something to edit later
func LookForConfigFile() {
	const (
		MSG1 = "wrote default configuration file: '%s'"
		ERR1 = "LookForConfigFile() could not write '%s'"
	)

	_, a := os.Stat(vv.CONFIGLOCATION + "/" + vv.CONFIGBASIC)

	var b error
	h, e := os.UserHomeDir()
	if e != nil {
		b = e
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC)
	}

	if a != nil && b != nil {
		content, err := json.MarshalIndent(BuildDefaultConfig(), "", vv.JSONINDENT)
		Msg.EC(err)
		fn := vv.CONFIGLOCATION + "/" + vv.CONFIGBASIC
		err = os.WriteFile(fn, content, vv.WRITEPERMS)
		if err != nil {
			Msg.CRIT(fmt.Sprintf(ERR1, fn))
			return
		}
		Msg.PEEK(fmt.Sprintf(MSG1, fn))
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() []string {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL2 = "ConfigAtLaunch() failed to execute help text template"
	)

	Config = BuildDefaultConfig()

	cf := vv.CONFIGLOCATION + "/" + vv.CONFIGBASIC
	if _, e := os.Stat(cf); e != nil {
		if h, e2 := os.UserHomeDir(); e2 == nil {
			cf = fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
		}
	}

	// "-cf" has to win before the file gets opened
	for i, a := range os.Args[1:] {
		if a == "-cf" && i+2 < len(os.Args) {
			cf = os.Args[i+2]
		}
	}

	loadedcfg, e := os.Open(cf)
	if e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := str.CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
		}
	}

	// a stale config file might zero these; that is very bad...
	if Config.Topics < 1 || Config.Topics > vv.LDAMAXTOPICS {
		Config.Topics = vv.LDATOPICS
	}
	if Config.BucketWidth < 1 {
		Config.BucketWidth = vv.DEFAULTBUCKETWIDTH
	}
	if Config.WorkerCount < 1 || Config.WorkerCount > runtime.NumCPU() {
		Config.WorkerCount = runtime.NumCPU()
	}

	args := os.Args[1:]
	var only []string

	help := func() {
		PrintVersion(*Config)
		m := map[string]interface{}{
			"bucketwidth": Config.BucketWidth,
			"conffile":    vv.CONFIGBASIC,
			"cpus":        runtime.NumCPU(),
			"dbfile":      Config.CorpusDB,
			"ldaiter":     Config.LDAIterations,
			"loglevel":    Config.LogLevel,
			"maxtopics":   vv.LDAMAXTOPICS,
			"mergedfile":  vv.MERGEDFILENAME,
			"outdir":      Config.OutDir,
			"projurl":     vv.PROJURL,
			"rawdir":      Config.RawDir,
			"rawsuffix":   vv.RAWFILESUFFIX,
			"seed":        Config.Seed,
			"seedterms":   strings.Join(Config.SeedTerms, ","),
			"topics":      Config.Topics,
			"workers":     Config.WorkerCount,
		}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL2)
		}
		fmt.Println(Msg.ColStyle(b.String()))
		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(0)
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			// consumed before the config file was read
		case "-db":
			Config.UseDB = true
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			help()
		case "-it":
			it, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LDAIterations = it
		case "-nc":
			Config.DrawCharts = false
		case "-nn":
			Config.FindNeighbors = true
		case "-od":
			Config.OutDir = args[i+1]
		case "-ow":
			Config.Overwrite = true
		case "-pr":
			Config.ProfileRun = true
		case "-rd":
			Config.RawDir = args[i+1]
		case "-sd":
			sd, err := strconv.ParseInt(args[i+1], 10, 64)
			Msg.EC(err)
			Config.Seed = sd
		case "-st":
			Config.SelfTest = true
		case "-tm":
			Config.SeedTerms = strings.Split(args[i+1], ",")
		case "-tp":
			tp, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			if tp > 0 && tp <= vv.LDAMAXTOPICS {
				Config.Topics = tp
			}
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-yw":
			yw, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.BucketWidth = yw
		default:
			if strings.HasSuffix(a, ".csv") {
				only = append(only, a)
			}
		}
	}

	UpdateMessageMakerWithConfig(Msg)

	return only
}

// PrintVersion - the launch banner
func PrintVersion(c str.CurrentConfiguration) {
	// example:
	// AestheticaGoMiner (v.0.3.1)

	sn := fmt.Sprintf("C1S1%sC0", vv.MYNAME)
	sv := fmt.Sprintf(" (C5v.%sC0)", vv.VERSION)
	banner := Msg.ColStyle(sn + sv)
	fmt.Println(banner)
}
