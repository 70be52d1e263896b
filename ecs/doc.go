// Package ecs bridges tween boundaries into a [Donburi] world as typed events.
//
// [Bind] decorates a tween's callbacks so that every ping end, pong end and
// tween end also publishes a [TweenEvent]. Subscribe to [TweenEventType] in
// your ECS systems to receive them:
//
//	opts := tweener.PingPong(0.3, 0.3, 2)
//	opts.Callbacks = ecs.Bind(world, entity, "hit_flash", opts.Callbacks)
//	scheduler.TweenGraphicColor(sprite, white, red, opts)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
