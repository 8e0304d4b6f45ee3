// Ukkonen indexes a text with an incrementally built suffix tree and answers
// substring occurrence queries on it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/progressbar"
	"fortio.org/safecast"
	"fortio.org/struct2env"
	"golang.org/x/term"
	"grol.io/ukkonen/input"
	"grol.io/ukkonen/repl"
	"grol.io/ukkonen/suffixtree"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	Mode string
}

var config = Config{Mode: input.Runes.String()}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("UKKONEN_", res, true)
	fmt.Fprintln(w, "# Ukkonen environment variables:")
	fmt.Fprint(w, str)
}

var hookBefore, hookAfter func() int

func Main() int {
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("UKKONEN_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	modeFlag := flag.String("mode", config.Mode, "what one element is: "+input.Modes())
	textFlag := flag.String("text", "", "inline `text` to index instead of a file")
	queryFlag := flag.String("q", "", "`pattern` to search for, instead of reading queries from stdin; :all for every position")
	spans := flag.Bool("spans", false, "print [start,end) spans instead of start positions")
	dump := flag.Bool("dump", false, "dump the tree structure after indexing")
	stats := flag.Bool("stats", false, "print node counts after indexing")
	check := flag.Bool("check", false, "cross-check every query against a naive suffix trie (quadratic memory)")
	progress := flag.Bool("progress", false, "show a progress bar while indexing")
	cli.ArgsHelp = "[file] to index, `-` for stdin; gzip compressed files are detected"
	cli.MaxArgs = 1
	cli.Main()
	mode, err := input.ParseMode(*modeFlag)
	if err != nil {
		return log.FErrf("Invalid -mode: %v", err)
	}
	text := *textFlag
	switch {
	case len(flag.Args()) == 1 && text != "":
		return log.FErrf("Use either -text or a file argument, not both")
	case len(flag.Args()) == 1:
		path := flag.Arg(0)
		if path == "-" && *queryFlag == "" {
			return log.FErrf("Reading the text from stdin needs -q, stdin can't also provide the queries")
		}
		text, err = input.ReadFile(path)
		if err != nil {
			return log.FErrf("Error reading input: %v", err)
		}
	}
	if hookBefore != nil {
		ret := hookBefore()
		if ret != 0 {
			return ret
		}
	}
	elems := input.Split(mode, text)
	log.Infof("ukkonen %s - indexing %d %s", cli.LongVersion, len(elems), mode)
	tree := build(elems, *progress)
	log.Infof("Indexed: %s", tree.Stats())
	if *dump {
		tree.Dump(os.Stdout)
	}
	if *stats {
		fmt.Println(tree.Stats())
	}
	options := repl.Options{
		Mode:      mode,
		ShowSpans: *spans,
		Check:     *check,
		NoPrompt:  !term.IsTerminal(int(os.Stdin.Fd())),
	}
	s := repl.NewSession(tree, options)
	if *queryFlag != "" {
		s.EvalOne(*queryFlag, os.Stdout)
	} else if !*dump && !*stats {
		s.Interactive(os.Stdin, os.Stdout)
	}
	if hookAfter != nil {
		if ret := hookAfter(); ret != 0 {
			return ret
		}
	}
	return s.Errors
}

const progressSteps = 100

func build(elems []string, progress bool) *suffixtree.Tree[string] {
	if !progress || len(elems) < progressSteps {
		return suffixtree.Construct(elems)
	}
	tree := suffixtree.New[string]()
	bar := progressbar.NewBar()
	step := len(elems) / progressSteps
	total := safecast.MustConvert[float64](len(elems))
	for i, e := range elems {
		tree.Extend(e)
		if i%step == 0 {
			bar.Progress(100. * safecast.MustConvert[float64](i) / total)
		}
	}
	bar.Progress(100.)
	bar.End()
	return tree
}

