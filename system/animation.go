package system

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/sombervale/animation"
	"github.com/lixenwraith/sombervale/component"
	"github.com/lixenwraith/sombervale/engine"
)

// AnimationSystem advances every state machine of type A and writes the row into its sprite.
// It is the only writer of Sprite.FrameIndex.
type AnimationSystem[A animation.Animated] struct{}

func (AnimationSystem[A]) Name() string {
	t := reflect.TypeFor[A]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return fmt.Sprintf("animation<%s>", strings.ToLower(t.Name()))
}

func (AnimationSystem[A]) Access() []engine.Access {
	return []engine.Access{
		engine.ReadsUnique[component.UpdateTime](),
		engine.Writes[A](),
		engine.Writes[component.Sprite](),
	}
}

func (AnimationSystem[A]) Run(w *engine.World) {
	now := engine.MustUnique[component.UpdateTime](w).Now()
	anims := engine.ViewMutOf[A](w)
	sprites := engine.ViewMutOf[component.Sprite](w)

	w.Query().With(anims).With(sprites).Each(func(e engine.Entity) {
		a, _ := anims.Value(e)
		sprites.Get(e).FrameIndex = a.Animate(now)
	})
}
