package main

import (
	"fmt"
	"log"

	"github.com/infinivision/gaealist/nested"
	"github.com/infinivision/gaealist/rawdeque"
	"github.com/infinivision/gaealist/rawstack"
	"github.com/infinivision/gaealist/sorting"
	"github.com/infinivision/gaealist/stack"
)

func main() {
	{
		s := stack.New[int]()
		defer s.Close()
		for i := 0; i < 100; i++ {
			s.Push(i)
		}
		for i := 99; i >= 0; i-- {
			if v, ok := s.Pop(); !ok || v != i {
				log.Fatal(fmt.Errorf("stack: pop %v is not %v", v, i))
			}
		}
	}
	{
		s := rawstack.New[string]()
		defer s.Close()
		for i := 0; i < 100; i++ {
			s.Push(fmt.Sprintf("/u/b/u_%v", i))
		}
		itr := s.IterMut()
		for v, ok := itr.Next(); ok; v, ok = itr.Next() {
			*v += "!"
		}
		itr.Close()
		ritr := s.Iter()
		for v, ok := ritr.Next(); ok; v, ok = ritr.Next() {
			fmt.Printf("%s\n", v)
		}
		ritr.Close()
	}
	{
		q := rawdeque.New[int]()
		for i := 0; i < 100; i++ {
			q.Push(i)
		}
		itr := q.IntoIter()
		for i := 0; ; i++ {
			v, ok := itr.Next()
			if !ok {
				break
			}
			if v != i {
				log.Fatal(fmt.Errorf("deque: pop %v is not %v", v, i))
			}
		}
		itr.Close()
		q.Close()
	}
	{
		l := nested.New[int]()
		defer l.Close()
		for i := 0; i < 10; i++ {
			l.PushFront(i)
		}
		for v, ok := l.PopBack(); ok; v, ok = l.PopBack() {
			fmt.Printf("%v ", v)
		}
		fmt.Println()
	}
	{
		xs := []int{141, 1, 17, -7, -17, -27, 18, 541, 8, 7, 7}
		ys := append([]int{}, xs...)
		sorting.MergeSort(xs)
		sorting.BubbleSort(ys)
		fmt.Println(xs, ys)
	}
}
