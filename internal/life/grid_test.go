package life_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renkel/dotlife/internal/life"
)

var _ = Describe("Grid", func() {
	Describe("New", func() {
		It("allocates width*height dead cells", func() {
			g := life.New(8, 12)
			Expect(g.Cells()).To(HaveLen(96))
			Expect(g.Population()).To(BeZero())
		})

		It("accepts zero dimensions", func() {
			Expect(life.New(0, 0).Cells()).To(BeEmpty())
			Expect(life.New(4, 0).Cells()).To(BeEmpty())
		})
	})

	Describe("Get and Set", func() {
		It("round-trips a cell by coordinate", func() {
			g := life.New(4, 3)
			g.Set(2, 1, true)
			Expect(g.Get(2, 1)).To(BeTrue())
			Expect(g.Get(1, 2)).To(BeFalse())
		})
	})

	Describe("Neighbors", func() {
		It("counts five with the top two rows of a 3x3 grid alive", func() {
			g := life.New(3, 3)
			for _, c := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}} {
				g.Set(c[0], c[1], true)
			}
			Expect(g.Neighbors(1, 1)).To(Equal(5))
		})

		It("never counts the center cell", func() {
			g := life.New(3, 3)
			g.Set(1, 1, true)
			Expect(g.Neighbors(1, 1)).To(BeZero())
		})

		It("clamps the window at corners", func() {
			g := life.New(3, 3)
			for y := 0; y < 3; y++ {
				for x := 0; x < 3; x++ {
					g.Set(x, y, true)
				}
			}
			Expect(g.Neighbors(0, 0)).To(Equal(3))
			Expect(g.Neighbors(2, 2)).To(Equal(3))
			Expect(g.Neighbors(1, 0)).To(Equal(5))
			Expect(g.Neighbors(1, 1)).To(Equal(8))
		})

		It("does not wrap around edges", func() {
			g := life.New(4, 4)
			g.Set(3, 0, true)
			Expect(g.Neighbors(0, 0)).To(BeZero())
		})
	})

	DescribeTable("the transition rule",
		func(alive bool, neighbors int, want bool) {
			Expect(life.NextState(alive, neighbors)).To(Equal(want))
		},
		Entry("lone live cell dies", true, 0, false),
		Entry("live cell with one neighbor dies", true, 1, false),
		Entry("live cell with two neighbors survives", true, 2, true),
		Entry("live cell with three neighbors survives", true, 3, true),
		Entry("live cell with four neighbors dies", true, 4, false),
		Entry("live cell with eight neighbors dies", true, 8, false),
		Entry("dead cell with two neighbors stays dead", false, 2, false),
		Entry("dead cell with three neighbors is born", false, 3, true),
		Entry("dead cell with four neighbors stays dead", false, 4, false),
	)

	Describe("Step", func() {
		It("keeps an all-dead grid dead", func() {
			g := life.New(6, 6)
			g.Step()
			Expect(g.Population()).To(BeZero())
		})

		It("kills an isolated cell", func() {
			g := life.New(5, 5)
			g.Set(2, 2, true)
			g.Step()
			Expect(g.Population()).To(BeZero())
		})

		It("kills a cell with four neighbors", func() {
			g := life.New(5, 5)
			g.Set(2, 2, true)
			g.Set(1, 1, true)
			g.Set(3, 1, true)
			g.Set(1, 3, true)
			g.Set(3, 3, true)
			g.Step()
			Expect(g.Get(2, 2)).To(BeFalse())
		})

		It("oscillates a blinker", func() {
			g := life.New(5, 5)
			g.Set(2, 1, true)
			g.Set(2, 2, true)
			g.Set(2, 3, true)

			g.Step()

			Expect(g.Get(1, 2)).To(BeTrue())
			Expect(g.Get(2, 2)).To(BeTrue())
			Expect(g.Get(3, 2)).To(BeTrue())
			Expect(g.Population()).To(Equal(3))

			g.Step()

			Expect(g.Get(2, 1)).To(BeTrue())
			Expect(g.Get(2, 2)).To(BeTrue())
			Expect(g.Get(2, 3)).To(BeTrue())
			Expect(g.Population()).To(Equal(3))
		})

		It("is deterministic given the same generation", func() {
			a := life.New(20, 20)
			a.Randomize(rand.New(rand.NewSource(7)), 0.5)
			b := a.Clone()

			a.Step()
			b.Step()

			Expect(a.Cells()).To(Equal(b.Cells()))
		})
	})

	Describe("Randomize", func() {
		It("reproduces the same scattering from the same seed", func() {
			a := life.New(30, 30)
			b := life.New(30, 30)
			a.Randomize(rand.New(rand.NewSource(1)), 0.7)
			b.Randomize(rand.New(rand.NewSource(1)), 0.7)
			Expect(a.Cells()).To(Equal(b.Cells()))
		})

		It("hits roughly the requested density", func() {
			g := life.New(200, 150)
			g.Randomize(rand.New(rand.NewSource(99)), 0.7)
			ratio := float64(g.Population()) / float64(200*150)
			Expect(ratio).To(BeNumerically("~", 0.7, 0.02))
		})

		It("overwrites previous cell state", func() {
			g := life.New(10, 9)
			g.Randomize(rand.New(rand.NewSource(3)), 1.0)
			Expect(g.Population()).To(Equal(90))
			g.Randomize(rand.New(rand.NewSource(3)), 0.0)
			Expect(g.Population()).To(BeZero())
		})
	})

	Describe("Clone", func() {
		It("shares no state with the original", func() {
			g := life.New(4, 4)
			g.Set(1, 1, true)
			c := g.Clone()
			g.Set(2, 2, true)

			Expect(c.Get(1, 1)).To(BeTrue())
			Expect(c.Get(2, 2)).To(BeFalse())
		})
	})
})
