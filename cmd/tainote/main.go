package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/dscope"
	"github.com/reusee/tainote/cmds"
	"github.com/reusee/tainote/debugs"
	"github.com/reusee/tainote/logs"
	"github.com/reusee/tainote/modes"
	"github.com/reusee/tainote/notebooks"
	"github.com/reusee/tainote/noteconfigs"
	"github.com/reusee/tainote/scripts"
	"github.com/reusee/tainote/vars"
)

func init() {
	cmds.Define("run",
		cmds.Func(runOnce).
			Desc("evaluate a notebook file once and print the annotated buffer"))
	cmds.Define("watch",
		cmds.Func(watchFile).
			Desc("re-evaluate a notebook file whenever it changes"))
	cmds.Define("inject",
		cmds.Func(injectAt).
			Desc("write the outcome of the statement at a line into the file"))
	cmds.Define("repl",
		cmds.Func(replOver).
			Desc("open a repl, over a notebook file's environment if given"))
}

func main() {
	cmds.Execute(os.Args[1:])
}

func newScope() dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForProduction(),
	)
}

func runOnce(path string) (err error) {
	newScope().Call(func(
		sessions *notebooks.Sessions,
	) {
		buffer := NewFileBuffer(path)
		session := sessions.Get(path, buffer, &printSink{
			out:        os.Stdout,
			FileBuffer: buffer,
		})
		_, _, err = session.RunPass(context.Background())
	})
	return
}

func watchFile(path string) (err error) {
	newScope().Call(func(
		sessions *notebooks.Sessions,
		logger logs.Logger,
	) {
		ctx, cancel := signal.NotifyContext(context.Background(),
			syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		absPath, e := filepath.Abs(path)
		ce(e)

		watcher, e := fsnotify.NewWatcher()
		ce(e)
		defer watcher.Close()
		// watch the directory; editors replace files on save
		ce(watcher.Add(filepath.Dir(absPath)))

		buffer := NewFileBuffer(absPath)
		session := sessions.Get(absPath, buffer, &printSink{
			out:        os.Stdout,
			FileBuffer: buffer,
		})
		session.Enable()
		defer sessions.Drop(absPath)

		logger.Info("watching", "path", absPath)
		for {
			select {

			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				session.OnChange()

			case e, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("watch", "error", e)

			}
		}
	})
	return
}

func injectAt(path string, line int) (err error) {
	newScope().Call(func(
		sessions *notebooks.Sessions,
	) {
		buffer := NewFileBuffer(path)
		session := sessions.Get(path, buffer, &printSink{
			out:        os.Stdout,
			FileBuffer: buffer,
		})
		err = session.Inject(context.Background(), line)
	})
	return
}

func replOver(path *string) (err error) {
	newScope().Call(func(
		sessions *notebooks.Sessions,
		tap debugs.Tap,
		timeout noteconfigs.ExecTimeout,
		maxSteps noteconfigs.MaxSteps,
	) {
		ctx := context.Background()

		name := vars.DerefOrZero(path)
		if name == "" {
			eval := scripts.NewEvaluator(
				time.Duration(timeout),
				uint64(maxSteps),
			)
			tap(ctx, "scratch", eval.BaseEnv())
			return
		}

		buffer := NewFileBuffer(name)
		session := sessions.Get(name, buffer, &printSink{
			out:        os.Stdout,
			FileBuffer: buffer,
		})
		if _, _, err = session.RunPass(ctx); err != nil {
			return
		}
		tap(ctx, name, session.Env())
	})
	return
}
