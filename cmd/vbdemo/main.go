// Command vbdemo draws an arcade HUD through the text fallback and writes it
// to a PNG file.
//
// The host text service is started after the fallback installer, so the
// installer polls until the service appears.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/vbtext"
	"github.com/gogpu/vbtext/canvas"
	"github.com/gogpu/vbtext/vector"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		output  = flag.String("output", "hud.png", "output file")
		fill    = flag.String("color", "#0f0", "native text color")
		prefer  = flag.Bool("prefer-vector", false, "use vector outlines when the face covers the text")
		faceArg = flag.String("face", "", "typeface.js JSON face replacing the fallback face")
		startup = flag.Duration("startup", 120*time.Millisecond, "simulated host startup delay")
		timeout = flag.Duration("timeout", 5*time.Second, "how long to wait for installation")
		verbose = flag.Bool("v", false, "log installer activity")
	)
	flag.Parse()

	if *verbose {
		vbtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	col, err := canvas.ParseHex(*fill)
	if err != nil {
		log.Fatal(err)
	}

	env := vbtext.NewEnv()
	vbtext.RegisterFace(env)
	if *faceArg != "" {
		if err := loadFace(env, *faceArg); err != nil {
			log.Fatal(err)
		}
	}

	inst := vbtext.NewInstaller(env,
		vbtext.WithFillColor(col),
		vbtext.WithPreferVectorOutlines(*prefer),
	)
	inst.Install()

	c := canvas.New(*width, *height)
	c.Clear(color.Black)

	// The host comes up late.
	time.Sleep(*startup)
	host := vector.New(c)
	face, _ := env.Face(vbtext.FaceName)
	host.SetFace(face)
	env.PublishService(host)

	select {
	case <-inst.Done():
	case <-time.After(*timeout):
		log.Fatal("text fallback was not installed")
	}

	drawHUD(env.Text(), *width, *height)

	if err := c.SavePNG(*output); err != nil {
		log.Fatal(err)
	}
	log.Printf("Saved %s after %d install attempts", *output, inst.Attempts())
}

func loadFace(env *vbtext.Env, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	face, err := vbtext.LoadFace(f)
	if err != nil {
		return err
	}
	env.SetFace(vbtext.FaceName, face)
	return nil
}

func drawHUD(text vbtext.TextRenderer, width, height int) {
	w, h := float64(width), float64(height)
	text.RenderText("SCORE 001200", 18, 20, 36)
	text.RenderText("LIVES 3", 18, w-120, 36)
	text.RenderText("GAME OVER", 36, w/2-100, h/2)
	text.RenderText("PRESS SPACE TO START", 14, w/2-90, h/2+40)
}
